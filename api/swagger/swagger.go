package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teacher Planner API",
        "description": "Weekly schedule, class rosters, tasks and settings for a single teacher",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Views", "description": "Screen payloads for each navigation tab"},
        {"name": "Schedule", "description": "Weekly period grid"},
        {"name": "Classes", "description": "Class groups"},
        {"name": "Students", "description": "Rosters nested under a class"},
        {"name": "Tasks", "description": "Daily to-do list"},
        {"name": "Settings", "description": "Profile and theme"},
        {"name": "Notifications", "description": "Auto-expiring toast messages"},
        {"name": "Reports", "description": "Aggregates and file exports"}
    ],
    "paths": {
        "/views": {
            "get": {"tags": ["Views"], "summary": "List view modes", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/views/{mode}": {
            "get": {
                "tags": ["Views"],
                "summary": "Render one view",
                "parameters": [{"name": "mode", "in": "path", "required": true, "type": "string", "enum": ["schedule", "tracker", "classes", "tasks", "reports", "settings"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Unknown mode"}}
            }
        },
        "/schedule": {
            "get": {"tags": ["Schedule"], "summary": "Weekly schedule", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/schedule/slot": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Assign or clear a period",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSlotRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation error"}}
            }
        },
        "/classes": {
            "get": {"tags": ["Classes"], "summary": "List classes", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {
                "tags": ["Classes"],
                "summary": "Create a class",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get a class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete a class and its students",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/classes/{id}/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Add a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddStudentRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Class not found"}}
            }
        },
        "/classes/{id}/students/import": {
            "post": {
                "tags": ["Students"],
                "summary": "Import students from a name list or a .txt/.csv/.xlsx file",
                "consumes": ["application/json", "multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": false, "type": "file"}
                ],
                "responses": {"201": {"description": "Created"}, "415": {"description": "Unsupported file"}}
            }
        },
        "/classes/{id}/students/{studentId}": {
            "put": {
                "tags": ["Students"],
                "summary": "Replace a student record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "studentId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Remove a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/tasks/{id}/toggle": {
            "patch": {
                "tags": ["Tasks"],
                "summary": "Flip completion",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks/{id}": {
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/settings": {
            "get": {"tags": ["Settings"], "summary": "Current settings", "responses": {"200": {"description": "OK"}}},
            "put": {
                "tags": ["Settings"],
                "summary": "Replace settings",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSettingsRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/theme": {
            "get": {"tags": ["Settings"], "summary": "Current theme mode", "responses": {"200": {"description": "OK"}}},
            "put": {
                "tags": ["Settings"],
                "summary": "Set theme mode",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetThemeRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/theme/toggle": {
            "post": {"tags": ["Settings"], "summary": "Flip between light and dark", "responses": {"200": {"description": "OK"}}}
        },
        "/notifications": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Active notifications, oldest first",
                "parameters": [{"name": "wait", "in": "query", "required": false, "type": "string", "description": "Long-poll duration, e.g. 10s (max 30s)"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/notifications/{id}": {
            "delete": {
                "tags": ["Notifications"],
                "summary": "Dismiss a notification",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/reports": {
            "get": {"tags": ["Reports"], "summary": "Per-class report", "responses": {"200": {"description": "OK"}}}
        },
        "/exports/{kind}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a CSV or PDF export",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "kind", "in": "path", "required": true, "type": "string", "enum": ["schedule", "roster", "report"]},
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "classId", "in": "query", "required": false, "type": "string"}
                ],
                "responses": {"200": {"description": "File"}, "400": {"description": "Invalid query"}, "403": {"description": "Exports disabled"}}
            }
        }
    },
    "definitions": {
        "UpdateSlotRequest": {
            "type": "object",
            "required": ["day", "period"],
            "properties": {
                "day": {"type": "string", "enum": ["الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"]},
                "period": {"type": "integer", "minimum": 1, "maximum": 7},
                "className": {"type": "string"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "AddStudentRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "UpdateStudentRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "attendance": {"type": "object", "additionalProperties": {"type": "string", "enum": ["present", "absent", "late", "excused"]}},
                "participationScore": {"type": "integer"}
            }
        },
        "CreateTaskRequest": {
            "type": "object",
            "required": ["text", "priority"],
            "properties": {
                "text": {"type": "string"},
                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                "dueDate": {"type": "string", "format": "date"}
            }
        },
        "UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "themeColor": {"type": "string"},
                "teacherName": {"type": "string"},
                "schoolName": {"type": "string"}
            }
        },
        "SetThemeRequest": {
            "type": "object",
            "required": ["mode"],
            "properties": {"mode": {"type": "string", "enum": ["light", "dark"]}}
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
