// Package docs registers the OpenAPI document for the BFF with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/access": {
            "get": {
                "produces": ["application/json"],
                "tags": ["access"],
                "summary": "Evaluate access for a page",
                "parameters": [
                    {"type": "string", "description": "Page path", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/accessgate.Result"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/access/stream": {
            "get": {
                "tags": ["access"],
                "summary": "Stream access decisions over a websocket",
                "parameters": [
                    {"type": "string", "description": "Initial page path", "name": "path", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "400": {"description": "Bad Request"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/ratings/analytics": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Aggregate rating documents",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/teams/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Get the signed-in user's team",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "definitions": {
        "accessgate.Result": {
            "type": "object",
            "properties": {
                "decision": {"type": "string", "enum": ["loading", "allow", "redirect_login", "redirect_billing_blocked"]},
                "redirect_to": {"type": "string"},
                "banner": {"type": "string"}
            }
        },
        "errors.ProxyErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authenticated requests. Format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Solari BFF API",
	Description:      "Backend-for-frontend for the Solari dashboard: access gating, rating analytics and backend pass-through routes",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
