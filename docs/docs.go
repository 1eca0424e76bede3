// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs --v3.1=false
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/registros": {
            "get": {
                "description": "Returns every registration joined with its client, whatever its approval status. APROBACION is null while pending.",
                "produces": ["application/json"],
                "tags": ["registros"],
                "summary": "List registration records",
                "operationId": "listRegistros",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/registro.RegistroResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Sets the approval flag for the record with the given RFC. aprobacion must be a JSON boolean.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registros"],
                "summary": "Approve or reject a registration",
                "operationId": "setRegistroApproval",
                "parameters": [
                    {"description": "Decision", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registro.SetApprovalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/system/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Get system information",
                "operationId": "getSystemInfo",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SystemInfoResponse"}}}
            }
        },
        "/system/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Ping the API",
                "operationId": "pingSystem",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PingResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Registro no encontrado"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Registro aprobado correctamente"}}
        },
        "handler.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "pong"},
                "timestamp": {"type": "string", "example": "2026-01-23T12:00:00Z"}
            }
        },
        "handler.SystemInfoResponse": {
            "type": "object",
            "properties": {
                "go_version": {"type": "string", "example": "go1.25.5"},
                "name": {"type": "string", "example": "registros-fiscales"},
                "uptime": {"type": "string", "example": "1h30m45s"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "registro.RegistroResponse": {
            "type": "object",
            "properties": {
                "APROBACION": {"type": "boolean", "x-nullable": true},
                "NOMBRE": {"type": "string", "example": "Acme SA"},
                "PERIODO": {"type": "string", "example": "2024-01"},
                "RFC": {"type": "string", "example": "ABC010101AAA"}
            }
        },
        "registro.SetApprovalRequest": {
            "type": "object",
            "required": ["aprobacion", "rfc"],
            "properties": {
                "aprobacion": {"type": "boolean"},
                "rfc": {"type": "string", "example": "ABC010101AAA"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Registros Fiscales API",
	Description:      "Revisión y aprobación de registros fiscales",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
