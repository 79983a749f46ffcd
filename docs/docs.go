// Package docs is generated by swaggo/swag from the annotations in cmd/costd
// and internal/httpapi. Served at /swagger/ when built with -tags=swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "costd maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Static message confirming the API is up.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.RootResponse"
                        }
                    }
                }
            }
        },
        "/predict_cost": {
            "post": {
                "description": "Aligns the patient record to the model's training columns and returns the predicted charge in USD.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "prediction"
                ],
                "summary": "Predict yearly insurance charge",
                "parameters": [
                    {
                        "description": "Patient attributes",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.PatientRecord"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PredictResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/status": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Loaded model and schema",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.StatusResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "description": "HTTP status code.\nexample: 503",
                    "type": "integer",
                    "example": 503
                },
                "error": {
                    "description": "Error message.\nexample: model not loaded",
                    "type": "string",
                    "example": "model not loaded"
                }
            }
        },
        "types.PatientRecord": {
            "type": "object",
            "properties": {
                "age": {
                    "type": "integer",
                    "example": 30
                },
                "bmi": {
                    "type": "number",
                    "example": 25
                },
                "children": {
                    "type": "integer",
                    "example": 0
                },
                "region": {
                    "type": "string",
                    "example": "southwest"
                },
                "sex": {
                    "type": "string",
                    "example": "male"
                },
                "smoker": {
                    "type": "string",
                    "example": "no"
                }
            }
        },
        "types.PredictResponse": {
            "type": "object",
            "properties": {
                "input_data": {
                    "$ref": "#/definitions/types.PatientRecord"
                },
                "model_used": {
                    "type": "string",
                    "example": "Random Forest Regressor (Log-Transform)"
                },
                "predicted_charge_usd": {
                    "type": "number",
                    "example": 4215.37
                }
            }
        },
        "types.RootResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "insurance cost prediction API is running"
                }
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "artifacts_dir": {
                    "type": "string"
                },
                "columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "example": "random_forest"
                },
                "loaded_at_unix": {
                    "type": "integer"
                },
                "model": {
                    "type": "string",
                    "example": "Random Forest Regressor (Log-Transform)"
                },
                "reference_region": {
                    "type": "string",
                    "example": "northeast"
                },
                "state": {
                    "type": "string",
                    "example": "ready"
                },
                "target_transform": {
                    "type": "string",
                    "example": "log1p"
                },
                "uptime_seconds": {
                    "type": "integer",
                    "example": 3600
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "costd API",
	Description:      "HTTP API predicting yearly medical insurance charges from patient attributes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
