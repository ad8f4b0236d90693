// Package docs registers the swagger document for the HTTP API.
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
        "/login": {
            "post": {
                "description": "verifies the password against the stored hash",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["text/plain"],
                "tags": ["user"],
                "summary": "log a user in",
                "parameters": [
                    {
                        "description": "login request body",
                        "name": "req",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "Login Successful", "schema": {"type": "string"}},
                    "400": {"description": "Missing required fields | User not found | Invalid credentials", "schema": {"type": "string"}},
                    "500": {"description": "Error logging in", "schema": {"type": "string"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "validates the fields, rejects a known email and stores a bcrypt hash of the password",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["text/plain"],
                "tags": ["user"],
                "summary": "register a user",
                "parameters": [
                    {
                        "description": "register request body",
                        "name": "req",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RegisterReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "Registration Successful", "schema": {"type": "string"}},
                    "400": {"description": "Missing required fields | Invalid email address | password rule | User already exists", "schema": {"type": "string"}},
                    "500": {"description": "Error registering user", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginReq": {
            "type": "object",
            "required": ["password", "userId"],
            "properties": {
                "password": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "dto.RegisterReq": {
            "type": "object",
            "required": ["email", "password", "userId"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "userId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "authgate",
	Description:      "user registration and login",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
