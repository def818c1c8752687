// Package docs holds the OpenAPI description served at /swagger. Regenerate
// with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/students/register": {
            "post": {
                "tags": ["students"],
                "summary": "Register a student",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.StudentRegisterRequest"}}],
                "responses": {
                    "201": {"description": "Student registered successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Roll number or email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/login": {
            "post": {
                "tags": ["students"],
                "summary": "Student login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.StudentLoginRequest"}}],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "Current student profile",
                "responses": {
                    "200": {"description": "Student profile", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["complaints"],
                "summary": "List own complaints",
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["complaints"],
                "summary": "Submit a complaint",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateComplaintRequest"}}],
                "responses": {
                    "201": {"description": "Complaint submitted successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/complaints/by-roll-number/{roll_number}": {
            "get": {
                "tags": ["complaints"],
                "summary": "List complaints by roll number",
                "parameters": [{"in": "path", "name": "roll_number", "type": "string", "required": true}],
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/complaints/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["complaints"],
                "summary": "Get own complaint",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Complaint", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Complaint not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/complaints/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["complaints"],
                "summary": "Update own complaint status",
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Complaint status updated successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Complaint not found or not owned by student", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/teachers/register": {
            "post": {
                "tags": ["teachers"],
                "summary": "Register a teacher",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.TeacherRegisterRequest"}}],
                "responses": {"201": {"description": "Teacher registered successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/teachers/login": {
            "post": {
                "tags": ["teachers"],
                "summary": "Teacher login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.TeacherLoginRequest"}}],
                "responses": {"200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/teachers/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["teachers"],
                "summary": "Current teacher profile",
                "responses": {"200": {"description": "Teacher profile", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/teachers/complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["teachers"],
                "summary": "List student complaints",
                "parameters": [
                    {"in": "query", "name": "branch", "type": "string"},
                    {"in": "query", "name": "status", "type": "string"},
                    {"in": "query", "name": "complaint_type", "type": "string"},
                    {"in": "query", "name": "search", "type": "string"}
                ],
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["teachers"],
                "summary": "Submit a teacher complaint",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTeacherComplaintRequest"}}],
                "responses": {"201": {"description": "Complaint submitted successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/teachers/complaints/{id}/approve": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["teachers"],
                "summary": "Approve a student complaint",
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ApproveComplaintRequest"}}
                ],
                "responses": {
                    "200": {"description": "Complaint approved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Complaint not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/teachers/my-complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["teachers"],
                "summary": "List own teacher complaints",
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/register": {
            "post": {
                "tags": ["admin"],
                "summary": "Register an admin",
                "parameters": [
                    {"in": "header", "name": "X-Admin-Registration-Key", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AdminRegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Admin registered successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "403": {"description": "Registration disabled or wrong key", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AdminLoginRequest"}}],
                "responses": {"200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Current admin profile",
                "responses": {"200": {"description": "Admin profile", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List all student complaints",
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/complaints/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["admin"],
                "summary": "Export complaints as a spreadsheet",
                "responses": {"200": {"description": "Workbook attachment", "schema": {"type": "file"}}}
            }
        },
        "/admin/complaints/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Update complaint status",
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStatusRequest"}}
                ],
                "responses": {"200": {"description": "Complaint status updated successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/teacher-approved-complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List teacher-approved complaints",
                "responses": {"200": {"description": "Approved complaints with teacher details", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/teacher-complaints": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List all teacher complaints",
                "responses": {"200": {"description": "Complaints, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/teacher-complaints/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Update teacher complaint status",
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStatusRequest"}}
                ],
                "responses": {"200": {"description": "Complaint status updated successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/admin/statistics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Complaint statistics",
                "responses": {"200": {"description": "Totals and breakdowns", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/resources": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["resources"],
                "summary": "List resources",
                "responses": {"200": {"description": "Resources, newest first", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["resources"],
                "summary": "Create a resource",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ResourceRequest"}}],
                "responses": {"201": {"description": "Resource created successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/resources/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["resources"],
                "summary": "Get a resource",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Resource", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["resources"],
                "summary": "Update a resource",
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ResourceRequest"}}
                ],
                "responses": {"200": {"description": "Resource updated successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["resources"],
                "summary": "Delete a resource",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Resource deleted successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "field": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.StudentRegisterRequest": {
            "type": "object",
            "required": ["roll_number", "name", "email", "branch", "year", "password"],
            "properties": {
                "roll_number": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "branch": {"type": "string"},
                "year": {"type": "integer"},
                "password": {"type": "string"}
            }
        },
        "dto.StudentLoginRequest": {
            "type": "object",
            "required": ["roll_number", "password"],
            "properties": {
                "roll_number": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.TeacherRegisterRequest": {
            "type": "object",
            "required": ["teacher_id", "name", "email", "department", "designation", "password"],
            "properties": {
                "teacher_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"},
                "designation": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.TeacherLoginRequest": {
            "type": "object",
            "required": ["teacher_id", "password"],
            "properties": {
                "teacher_id": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AdminRegisterRequest": {
            "type": "object",
            "required": ["username", "name", "email", "password"],
            "properties": {
                "username": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AdminLoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.CreateComplaintRequest": {
            "type": "object",
            "required": ["complaint_type", "location", "problem_description"],
            "properties": {
                "complaint_type": {"type": "string"},
                "location": {"type": "string"},
                "specific_item": {"type": "string"},
                "problem_description": {"type": "string"},
                "suggestions": {"type": "string"}
            }
        },
        "dto.CreateTeacherComplaintRequest": {
            "type": "object",
            "required": ["location", "problem_description"],
            "properties": {
                "complaint_type": {"type": "string"},
                "category": {"type": "string"},
                "specific_type": {"type": "string"},
                "location": {"type": "string"},
                "specific_item": {"type": "string"},
                "problem_description": {"type": "string"},
                "suggestions": {"type": "string"}
            }
        },
        "dto.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["Pending", "In Progress", "Resolved"]}
            }
        },
        "dto.ApproveComplaintRequest": {
            "type": "object",
            "required": ["approval_note"],
            "properties": {
                "approval_note": {"type": "string"}
            }
        },
        "dto.ResourceRequest": {
            "type": "object",
            "required": ["name", "item_id"],
            "properties": {
                "name": {"type": "string"},
                "item_id": {"type": "string"},
                "features": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token from a login endpoint",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "College Complaints API",
	Description:      "Complaint management for students, teachers and administrators",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
