package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Training Enrollment API",
        "description": "Enrollment requests, roster, trainers and trainee signup",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "TraineeRequests",
            "description": "Enrollment request lifecycle"
        },
        {
            "name": "Trainees",
            "description": "Active roster"
        },
        {
            "name": "Trainers",
            "description": "Trainer roster"
        },
        {
            "name": "Signup",
            "description": "Trainee accounts"
        }
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the record store)",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Record store unreachable"
                    }
                }
            }
        },
        "/request-trainee": {
            "post": {
                "tags": [
                    "TraineeRequests"
                ],
                "summary": "Submit an enrollment request",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmitTraineeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Stored as Pending",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Record store unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/trainee-requests": {
            "get": {
                "tags": [
                    "TraineeRequests"
                ],
                "summary": "List pending enrollment requests",
                "responses": {
                    "200": {
                        "description": "Pending requests",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Record store unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/approve-trainee/{id}": {
            "put": {
                "tags": [
                    "TraineeRequests"
                ],
                "summary": "Accept or reject an enrollment request",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/DecisionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Decision stored",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid status or id",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainee request not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Record store unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/get-trainee": {
            "get": {
                "tags": [
                    "Trainees"
                ],
                "summary": "List roster entries",
                "responses": {
                    "200": {
                        "description": "Roster",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/get-trainee/{id}": {
            "get": {
                "tags": [
                    "Trainees"
                ],
                "summary": "Get a roster entry",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roster entry",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainee not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/edit-trainee/{id}": {
            "put": {
                "tags": [
                    "Trainees"
                ],
                "summary": "Edit a roster entry",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateTraineeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainee not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/delete-trainee/{id}": {
            "delete": {
                "tags": [
                    "Trainees"
                ],
                "summary": "Remove a roster entry",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainee not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": [
                    "Trainees"
                ],
                "summary": "Roster head count",
                "responses": {
                    "200": {
                        "description": "Attendance",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/attendance/export": {
            "get": {
                "tags": [
                    "Trainees"
                ],
                "summary": "Download the roster",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roster document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/get-trainer": {
            "get": {
                "tags": [
                    "Trainers"
                ],
                "summary": "List trainers",
                "responses": {
                    "200": {
                        "description": "Trainers",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/get-trainer/{id}": {
            "get": {
                "tags": [
                    "Trainers"
                ],
                "summary": "Get a trainer",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Trainer",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainer not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/add-trainer": {
            "post": {
                "tags": [
                    "Trainers"
                ],
                "summary": "Add a trainer",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateTrainerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/edit-trainer/{id}": {
            "put": {
                "tags": [
                    "Trainers"
                ],
                "summary": "Edit a trainer",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateTrainerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainer not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/delete-trainer/{id}": {
            "delete": {
                "tags": [
                    "Trainers"
                ],
                "summary": "Remove a trainer",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Trainer not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/signup": {
            "post": {
                "tags": [
                    "Signup"
                ],
                "summary": "Create a trainee account",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SignupRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created with token",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/trainees": {
            "get": {
                "tags": [
                    "Signup"
                ],
                "summary": "List trainee accounts",
                "responses": {
                    "200": {
                        "description": "Accounts",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "SubmitTraineeRequest": {
            "type": "object",
            "required": [
                "TraineeName"
            ],
            "properties": {
                "TraineeId": {
                    "type": "integer"
                },
                "TraineeName": {
                    "type": "string"
                },
                "Class": {
                    "type": "string"
                },
                "Number": {
                    "type": "string"
                },
                "Age": {
                    "type": "integer"
                },
                "Dob": {
                    "type": "string"
                },
                "Gender": {
                    "type": "string"
                }
            }
        },
        "UpdateTraineeRequest": {
            "type": "object",
            "required": [
                "TraineeName"
            ],
            "properties": {
                "TraineeName": {
                    "type": "string"
                },
                "Class": {
                    "type": "string"
                },
                "Number": {
                    "type": "string"
                },
                "Age": {
                    "type": "integer"
                },
                "Dob": {
                    "type": "string"
                },
                "Gender": {
                    "type": "string"
                }
            }
        },
        "DecisionRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "Accepted",
                        "Rejected"
                    ]
                }
            }
        },
        "CreateTrainerRequest": {
            "type": "object",
            "required": [
                "TrainerId",
                "TrainerName"
            ],
            "properties": {
                "TrainerId": {
                    "type": "integer"
                },
                "TrainerName": {
                    "type": "string"
                },
                "Mobile": {
                    "type": "string"
                },
                "Subject": {
                    "type": "string"
                },
                "Salary": {
                    "type": "string"
                }
            }
        },
        "UpdateTrainerRequest": {
            "type": "object",
            "required": [
                "TrainerName"
            ],
            "properties": {
                "TrainerName": {
                    "type": "string"
                },
                "Mobile": {
                    "type": "string"
                },
                "Number": {
                    "type": "string"
                },
                "Subject": {
                    "type": "string"
                },
                "Salary": {
                    "type": "string"
                }
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
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
