// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/login": {"post": {"tags": ["mock"], "summary": "Log in with a fixture account", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "code 200 carries {token}, code 201 carries {message}"}, "413": {"description": "Request Entity Too Large"}, "429": {"description": "Too Many Requests"}}}},
        "/api/user/info": {"get": {"tags": ["mock"], "summary": "Fetch the fixture account owning a token", "produces": ["application/json"], "parameters": [{"type": "string", "name": "authorization", "in": "header", "required": true}], "responses": {"200": {"description": "code 200 carries the account, code 201 carries {message}"}}}},
        "/api/users": {
            "get": {"tags": ["users"], "summary": "List users", "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "role", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}},
            "post": {"security": [{"FixtureToken": []}], "tags": ["users"], "summary": "Add a user", "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/users/fetch": {"get": {"tags": ["users"], "summary": "Fetch users with simulated latency", "responses": {"200": {"description": "OK"}}}},
        "/api/users/admins": {"get": {"tags": ["users"], "summary": "List admin users", "responses": {"200": {"description": "OK"}}}},
        "/api/users/{id}": {
            "patch": {"security": [{"FixtureToken": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"security": [{"FixtureToken": []}], "tags": ["users"], "summary": "Delete a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/users/{id}/toggle-status": {"post": {"security": [{"FixtureToken": []}], "tags": ["users"], "summary": "Flip a user between active and inactive", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/session": {
            "get": {"tags": ["session"], "summary": "Current session", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["session"], "summary": "Start a session as a store user", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["session"], "summary": "End the session", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/session/profile": {"patch": {"tags": ["session"], "summary": "Edit the logged-in user's name or email", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/api/todos": {
            "get": {"tags": ["todos"], "summary": "Todos of the logged-in user", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["todos"], "summary": "Add a todo for the logged-in user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/todos/{id}": {"delete": {"tags": ["todos"], "summary": "Delete a todo", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/todos/{id}/toggle": {"post": {"tags": ["todos"], "summary": "Flip a todo between done and not done", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/stats": {"get": {"tags": ["store"], "summary": "Derived counters of the store", "responses": {"200": {"description": "OK"}}}},
        "/api/store": {"get": {"tags": ["store"], "summary": "Full copy of the store state", "responses": {"200": {"description": "OK"}}}},
        "/api/store/reset": {"post": {"security": [{"FixtureToken": []}], "tags": ["store"], "summary": "Clear every collection and the session", "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/api/app": {"get": {"tags": ["app"], "summary": "Shell state", "responses": {"200": {"description": "OK"}}}},
        "/api/counter": {"get": {"tags": ["counter"], "summary": "Counter state", "responses": {"200": {"description": "OK"}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "securityDefinitions": {
        "FixtureToken": {"type": "apiKey", "name": "authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Admin Demo Backend",
	Description:      "In-memory admin console store with a fixture auth backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
