// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

// Package apidocs registers the OpenAPI document served by the Swagger UI at
// /swagger/*. Importing the package for side effects is enough:
//
//	import _ "github.com/tomtom215/listingscope/internal/apidocs"
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
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
                "summary": "Service health",
                "responses": {
                    "200": {"description": "Dataset size, load time and uptime", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/facets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filterable values",
                "description": "Regions, room types, the dataset price range and the default filter.",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Full dashboard snapshot",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "304": {"description": "Not modified"},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Summary metrics of the filtered listings",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/distribution/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Distribution"],
                "summary": "Listing counts per region",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/distribution/room-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Distribution"],
                "summary": "Listing counts per room type",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/distribution/price": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Distribution"],
                "summary": "Price histogram",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/hosts/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Hosts"],
                "summary": "Hosts with the most listings",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"},
                    {"type": "integer", "name": "limit", "in": "query", "minimum": 1, "description": "Number of hosts (default from configuration)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter or limit", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/insights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Secondary insights",
                "description": "Top hosts, highly reviewed listings, average minimum nights and fully booked share.",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/listings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "First rows of the filtered listings",
                "parameters": [
                    {"$ref": "#/parameters/neighbourhood_group"},
                    {"$ref": "#/parameters/room_type"},
                    {"$ref": "#/parameters/price_min"},
                    {"$ref": "#/parameters/price_max"},
                    {"$ref": "#/parameters/min_reviews"},
                    {"$ref": "#/parameters/availability"},
                    {"type": "integer", "name": "limit", "in": "query", "minimum": 1, "description": "Number of rows (default from configuration)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid filter or limit", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/ws": {
            "get": {
                "tags": ["Live"],
                "summary": "Live dashboard WebSocket",
                "description": "Send {\"type\":\"filter\",\"data\":{...}} frames and receive {\"type\":\"snapshot\"} frames.",
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "403": {"description": "Origin not allowed"}
                }
            }
        }
    },
    "parameters": {
        "neighbourhood_group": {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "name": "neighbourhood_group", "in": "query", "description": "Regions to include; empty includes all"},
        "room_type": {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "name": "room_type", "in": "query", "description": "Room types to include; empty includes all"},
        "price_min": {"type": "number", "minimum": 0, "name": "price_min", "in": "query", "description": "Lowest nightly price (default: dataset minimum)"},
        "price_max": {"type": "number", "minimum": 0, "name": "price_max", "in": "query", "description": "Highest nightly price (default: dataset maximum)"},
        "min_reviews": {"type": "integer", "minimum": 0, "name": "min_reviews", "in": "query", "description": "Minimum number of reviews"},
        "availability": {"type": "integer", "minimum": 0, "maximum": 365, "name": "availability", "in": "query", "description": "Minimum days available per year"}
    },
    "definitions": {
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "format": "date-time"},
                "query_time_ms": {"type": "integer"},
                "cached": {"type": "boolean"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"},
                "details": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Listingscope API",
	Description:      "Filterable analytics over short-term rental listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
