// Package api holds the generated Swagger registration for the service.
// Regenerate with: swag init -g cmd/server/main.go -o docs/api
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/mealmind/mealmind-api"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/inventory-items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "List inventory",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Add inventory",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/inventory-items/expiring": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "List expiring inventory",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "days_ahead", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/meal-plans": {
            "get": {
                "produces": ["application/json"],
                "tags": ["MealPlans"],
                "summary": "List meal plans",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "boolean", "name": "current_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["MealPlans"],
                "summary": "Create meal plan",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/meal-plans/{planId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["MealPlans"],
                "summary": "Get meal plan",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "planId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["MealPlans"],
                "summary": "Delete meal plan",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "planId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "List recipes",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Create recipe",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/recipes/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Suggest recipes",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "max_prep_time", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:4000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "MealMind API",
	Description:      "Meal planning and food waste tracking data service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
