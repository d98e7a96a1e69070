package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "MENRO Waste Management API",
        "description": "Municipal waste management backend: residents, waste reports, collection schedules, truck routes, educational content, notifications and the admin dashboard.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Residents", "description": "Resident registrations"},
        {"name": "WasteReports", "description": "Resident-filed waste reports"},
        {"name": "Schedules", "description": "Collection schedules per zone"},
        {"name": "Routes", "description": "Truck collection routes"},
        {"name": "Education", "description": "Public awareness content"},
        {"name": "Notifications", "description": "Notification register"},
        {"name": "Dashboard", "description": "Admin dashboard statistics"}
    ],
    "paths": {
        "/residents": {
            "get": {
                "tags": ["Residents"],
                "summary": "List residents",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Resident"}}}
                }
            },
            "post": {
                "tags": ["Residents"],
                "summary": "Register resident",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateResidentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Resident"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/residents/{id}": {
            "get": {
                "tags": ["Residents"],
                "summary": "Get resident detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Resident"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["Residents"],
                "summary": "Partially update resident",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Resident"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/waste-reports": {
            "get": {
                "tags": ["WasteReports"],
                "summary": "List waste reports",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WasteReport"}}}
                }
            },
            "post": {
                "tags": ["WasteReports"],
                "summary": "File waste report",
                "consumes": ["application/json", "multipart/form-data"],
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/CreateWasteReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/WasteReport"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/waste-reports/export": {
            "get": {
                "tags": ["WasteReports"],
                "summary": "Export waste reports",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/waste-reports/{id}": {
            "get": {
                "tags": ["WasteReports"],
                "summary": "Get waste report detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WasteReport"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["WasteReports"],
                "summary": "Partially update waste report",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WasteReport"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/collection-schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List collection schedules",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CollectionSchedule"}}}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Create collection schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CollectionSchedule"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/collection-schedules/{id}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get schedule detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CollectionSchedule"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["Schedules"],
                "summary": "Partially update schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CollectionSchedule"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/routes": {
            "get": {
                "tags": ["Routes"],
                "summary": "List routes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Route"}}}
                }
            },
            "post": {
                "tags": ["Routes"],
                "summary": "Create route",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRouteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Route"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/routes/{id}": {
            "get": {
                "tags": ["Routes"],
                "summary": "Get route detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Route"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["Routes"],
                "summary": "Partially update route",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Route"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/educational-content": {
            "get": {
                "tags": ["Education"],
                "summary": "List educational content",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EducationalContent"}}}
                }
            },
            "post": {
                "tags": ["Education"],
                "summary": "Publish educational content",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEducationalContentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EducationalContent"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/educational-content/{id}": {
            "get": {
                "tags": ["Education"],
                "summary": "Get content detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EducationalContent"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["Education"],
                "summary": "Partially update content",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EducationalContent"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "tags": ["Notifications"],
                "summary": "List notifications",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Notification"}}}
                }
            },
            "post": {
                "tags": ["Notifications"],
                "summary": "Record notification",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNotificationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Notification"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardStats"}}
                }
            }
        }
    },
    "definitions": {
        "Resident": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "location": {"type": "string"},
                "status": {"type": "string"},
                "registeredDate": {"type": "string", "format": "date-time"}
            }
        },
        "CreateResidentRequest": {
            "type": "object",
            "required": ["name", "email", "location"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "location": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "WasteReport": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "location": {"type": "string"},
                "coordinates": {"type": "string", "x-nullable": true},
                "imageUrl": {"type": "string", "x-nullable": true},
                "status": {"type": "string"},
                "reportedBy": {"type": "integer", "x-nullable": true},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateWasteReportRequest": {
            "type": "object",
            "required": ["title", "description", "type", "location"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "location": {"type": "string"},
                "coordinates": {"type": "string"},
                "imageUrl": {"type": "string"},
                "status": {"type": "string"},
                "reportedBy": {"type": "integer"}
            }
        },
        "CollectionSchedule": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "zone": {"type": "string"},
                "barangay": {"type": "string"},
                "scheduledDate": {"type": "string", "format": "date-time"},
                "scheduledTime": {"type": "string"},
                "status": {"type": "string"},
                "truckId": {"type": "string", "x-nullable": true}
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "required": ["zone", "barangay", "scheduledDate", "scheduledTime"],
            "properties": {
                "zone": {"type": "string"},
                "barangay": {"type": "string"},
                "scheduledDate": {"type": "string", "format": "date-time"},
                "scheduledTime": {"type": "string"},
                "status": {"type": "string"},
                "truckId": {"type": "string"}
            }
        },
        "Route": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "distance": {"type": "string"},
                "estimatedTime": {"type": "string"},
                "collectionsCount": {"type": "integer"},
                "truckId": {"type": "string"},
                "status": {"type": "string"},
                "coordinates": {"type": "string", "x-nullable": true}
            }
        },
        "CreateRouteRequest": {
            "type": "object",
            "required": ["name", "distance", "estimatedTime", "truckId"],
            "properties": {
                "name": {"type": "string"},
                "distance": {"type": "string"},
                "estimatedTime": {"type": "string"},
                "collectionsCount": {"type": "integer"},
                "truckId": {"type": "string"},
                "status": {"type": "string"},
                "coordinates": {"type": "string"}
            }
        },
        "EducationalContent": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "content": {"type": "string"},
                "imageUrl": {"type": "string", "x-nullable": true},
                "views": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateEducationalContentRequest": {
            "type": "object",
            "required": ["title", "description", "type", "content"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "content": {"type": "string"},
                "imageUrl": {"type": "string"},
                "views": {"type": "integer"}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "type": {"type": "string"},
                "recipientGroup": {"type": "string"},
                "channels": {"type": "string"},
                "sentAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateNotificationRequest": {
            "type": "object",
            "required": ["subject", "message", "type", "recipientGroup", "channels"],
            "properties": {
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "type": {"type": "string"},
                "recipientGroup": {"type": "string"},
                "channels": {"type": "string"}
            }
        },
        "DashboardStats": {
            "type": "object",
            "properties": {
                "activeTrucks": {"type": "integer"},
                "collectionsToday": {"type": "integer"},
                "pendingReports": {"type": "integer"},
                "registeredUsers": {"type": "integer"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
