// Package docs registers the Swagger document served at /swagger. Keep it in step with the handler annotations.
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
        "/api/advertisements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feeds"],
                "summary": "Special offers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/blogs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feeds"],
                "summary": "Travel stories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/destinations": {
            "get": {
                "description": "Runs the destination searches for the configured province and returns the feed state",
                "produces": ["application/json"],
                "tags": ["Feeds"],
                "summary": "Recommended destinations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feeds"],
                "summary": "Upcoming events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/i18n": {
            "get": {
                "description": "Returns the visitor's language and its translation table",
                "produces": ["application/json"],
                "tags": ["Language"],
                "summary": "Active translation table",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/language": {
            "put": {
                "description": "Switches and persists the visitor's language",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Language"],
                "summary": "Change language",
                "parameters": [
                    {
                        "description": "Language payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request_models.ChangeLanguageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/places/{id}": {
            "get": {
                "description": "Looks up a place that one of the feeds has already returned",
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Place details",
                "parameters": [
                    {"type": "string", "description": "Place ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/weather/air": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Air quality",
                "parameters": [
                    {"type": "string", "description": "Place name", "name": "place", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/weather/current": {
            "get": {
                "description": "The first forecast slot under current-weather names",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Current weather",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/weather/forecast": {
            "get": {
                "description": "Forecast in 3 hour slots, temperatures normalized to Celsius",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Five day forecast",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "request_models.ChangeLanguageRequest": {
            "type": "object",
            "required": ["language"],
            "properties": {
                "language": {"type": "string", "enum": ["th", "en"]}
            }
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string"},
                "trace_id": {"type": "string"}
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
	Title:            "Tiew API",
	Description:      "Province tourism feeds, weather and localization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
