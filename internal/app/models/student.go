package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	RollNumber string    `json:"roll_number" db:"roll_number" example:"21CS001"`
	Name       string    `json:"name" db:"name" example:"Asha Rao"`
	Email      string    `json:"email" db:"email" example:"asha@college.edu"`
	Password   string    `json:"-" db:"password"`
	Branch     string    `json:"branch" db:"branch" example:"CSE"`
	Year       int       `json:"year" db:"year" example:"3"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	TeacherID   string    `json:"teacher_id" db:"teacher_id" example:"T-104"`
	Name        string    `json:"name" db:"name" example:"R. Menon"`
	Email       string    `json:"email" db:"email" example:"menon@college.edu"`
	Password    string    `json:"-" db:"password"`
	Department  string    `json:"department" db:"department" example:"CSE"`
	Designation string    `json:"designation" db:"designation" example:"Assistant Professor"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"admin"`
	Name      string    `json:"name" db:"name" example:"Office Admin"`
	Email     string    `json:"email" db:"email" example:"admin@college.edu"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
