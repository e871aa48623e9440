// Package docs holds the OpenAPI document served under /api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/cadastros/agentes": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "List agentes ordered by key",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Create a record in agentes",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Agent"
                            }
                        }
                    }
                }
            }
        },
        "/cadastros/agentes/{id}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Get a record of agentes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Replace a record of agentes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Agent"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Delete a record of agentes",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/agentes/validar/{chave}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cross-check a key against agentes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Unknown keys answer 200 with encontrado=false",
                "parameters": [
                    {
                        "name": "chave",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/veiculos": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "List veiculos ordered by key",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Create a record in veiculos",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Vehicle"
                            }
                        }
                    }
                }
            }
        },
        "/cadastros/veiculos/{id}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Get a record of veiculos",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Replace a record of veiculos",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Vehicle"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Delete a record of veiculos",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/veiculos/validar/{chave}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cross-check a key against veiculos",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Unknown keys answer 200 with encontrado=false",
                "parameters": [
                    {
                        "name": "chave",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/linhas": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "List linhas ordered by key",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Create a record in linhas",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Line"
                            }
                        }
                    }
                }
            }
        },
        "/cadastros/linhas/{id}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Get a record of linhas",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Replace a record of linhas",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Line"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Delete a record of linhas",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/linhas/validar/{chave}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cross-check a key against linhas",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Unknown keys answer 200 with encontrado=false",
                "parameters": [
                    {
                        "name": "chave",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/consorcios": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "List consorcios ordered by key",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Create a record in consorcios",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Consortium"
                            }
                        }
                    }
                }
            }
        },
        "/cadastros/consorcios/{id}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Get a record of consorcios",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Replace a record of consorcios",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Consortium"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Delete a record of consorcios",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/consorcios/validar/{chave}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cross-check a key against consorcios",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Unknown keys answer 200 with encontrado=false",
                "parameters": [
                    {
                        "name": "chave",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/infracoes": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "List infracoes ordered by key",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Create a record in infracoes",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/InfractionType"
                            }
                        }
                    }
                }
            }
        },
        "/cadastros/infracoes/{id}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Get a record of infracoes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Replace a record of infracoes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/InfractionType"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Delete a record of infracoes",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/cadastros/infracoes/validar/{chave}": {
            "get": {
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cross-check a key against infracoes",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Unknown keys answer 200 with encontrado=false",
                "parameters": [
                    {
                        "name": "chave",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/irregularidades": {
            "get": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "List every notice",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Register a notice",
                "responses": {
                    "201": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Notice"
                            }
                        }
                    }
                }
            }
        },
        "/irregularidades/{id}": {
            "get": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Get a notice",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            },
            "put": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Replace a notice",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/Notice"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Delete a notice",
                "responses": {
                    "204": {
                        "description": "deleted"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/irregularidades/consulta": {
            "post": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Query notices by number or period",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "A malformed date aborts the query with 422",
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/QueryInput"
                            }
                        }
                    }
                }
            }
        },
        "/irregularidades/proximo-numero": {
            "get": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Suggest the next notice number",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "description": "Advisory; 409 when no notice is stored"
            }
        },
        "/irregularidades/validar": {
            "post": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Cross-check the reference keys of a draft",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/ValidateInput"
                            }
                        }
                    }
                }
            }
        },
        "/irregularidades/impressao": {
            "post": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Build the print sheet",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/PrintInput"
                            }
                        }
                    }
                }
            }
        },
        "/irregularidades/protocolo": {
            "post": {
                "tags": [
                    "Irregularidades"
                ],
                "summary": "Build the delivery protocol",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/ProtocolInput"
                            }
                        }
                    }
                }
            }
        },
        "/estatisticas/infracoes": {
            "post": {
                "tags": [
                    "Estatisticas"
                ],
                "summary": "Notices per infraction in a year",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/YearInput"
                            }
                        }
                    }
                }
            }
        },
        "/estatisticas/mensal": {
            "post": {
                "tags": [
                    "Estatisticas"
                ],
                "summary": "Notices per month in a year",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/YearInput"
                            }
                        }
                    }
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Readiness probe with dependency checks",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Build and version info",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/meta/service": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Service info and uptime",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Envelope"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "Envelope": {
                "type": "object",
                "properties": {
                    "status_code": {
                        "type": "integer"
                    },
                    "status": {
                        "type": "string"
                    },
                    "request_id": {
                        "type": "string"
                    },
                    "data": {}
                }
            },
            "Agent": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "matriculaAgenteFiscalizador": {
                        "type": "string"
                    },
                    "nomeAgenteFiscalizador": {
                        "type": "string"
                    }
                },
                "required": [
                    "matriculaAgenteFiscalizador",
                    "nomeAgenteFiscalizador"
                ]
            },
            "Vehicle": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "numeroVeiculo": {
                        "type": "string"
                    },
                    "placa": {
                        "type": "string"
                    },
                    "subconcessionaria": {
                        "type": "string"
                    },
                    "numeroConsorcio": {
                        "type": "string"
                    }
                },
                "required": [
                    "numeroVeiculo",
                    "placa"
                ]
            },
            "Line": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "numeroLinha": {
                        "type": "string"
                    },
                    "nomeLinha": {
                        "type": "string"
                    }
                },
                "required": [
                    "numeroLinha",
                    "nomeLinha"
                ]
            },
            "Consortium": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "numeroConsorcio": {
                        "type": "string"
                    },
                    "nomeConsorcio": {
                        "type": "string"
                    }
                },
                "required": [
                    "numeroConsorcio",
                    "nomeConsorcio"
                ]
            },
            "InfractionType": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "codigoInfracao": {
                        "type": "string"
                    },
                    "nomeInfracao": {
                        "type": "string"
                    }
                },
                "required": [
                    "codigoInfracao",
                    "nomeInfracao"
                ]
            },
            "Notice": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string"
                    },
                    "numeroIrregularidade": {
                        "type": "string"
                    },
                    "dataIrregularidade": {
                        "type": "string"
                    },
                    "horario": {
                        "type": "string"
                    },
                    "local": {
                        "type": "string"
                    },
                    "numeroLocal": {
                        "type": "string"
                    },
                    "bairro": {
                        "type": "string"
                    },
                    "descricao": {
                        "type": "string"
                    },
                    "dataEmissao": {
                        "type": "string"
                    },
                    "prazoCumprimentoConferencia": {
                        "type": "string"
                    },
                    "matAgenteConferente": {
                        "type": "string"
                    },
                    "matriculaAgente": {
                        "type": "string"
                    },
                    "codigoInfracao": {
                        "type": "string"
                    },
                    "numeroLinha": {
                        "type": "string"
                    },
                    "numeroVeiculo": {
                        "type": "string"
                    },
                    "numeroConsorcio": {
                        "type": "string"
                    },
                    "placaVeiculo": {
                        "type": "string"
                    },
                    "subconcessionaria": {
                        "type": "string"
                    }
                },
                "required": [
                    "numeroIrregularidade",
                    "dataIrregularidade",
                    "horario",
                    "local",
                    "bairro",
                    "descricao",
                    "dataEmissao",
                    "prazoCumprimentoConferencia",
                    "matAgenteConferente",
                    "matriculaAgente",
                    "codigoInfracao",
                    "numeroLinha",
                    "numeroVeiculo",
                    "numeroConsorcio"
                ]
            },
            "QueryInput": {
                "type": "object",
                "properties": {
                    "numeroIrregularidade": {
                        "type": "string"
                    },
                    "dataInicio": {
                        "type": "string"
                    },
                    "dataFim": {
                        "type": "string"
                    },
                    "busca": {
                        "type": "string"
                    },
                    "pagina": {
                        "type": "integer"
                    },
                    "tamanhoPagina": {
                        "type": "integer"
                    }
                }
            },
            "ValidateInput": {
                "type": "object",
                "properties": {
                    "matriculaAgente": {
                        "type": "string"
                    },
                    "numeroLinha": {
                        "type": "string"
                    },
                    "codigoInfracao": {
                        "type": "string"
                    },
                    "numeroVeiculo": {
                        "type": "string"
                    },
                    "numeroConsorcio": {
                        "type": "string"
                    }
                },
                "required": [
                    "matriculaAgente",
                    "numeroLinha",
                    "codigoInfracao",
                    "numeroVeiculo",
                    "numeroConsorcio"
                ]
            },
            "PrintInput": {
                "type": "object",
                "properties": {
                    "tipo": {
                        "type": "string",
                        "enum": [
                            "lote",
                            "unitaria"
                        ]
                    },
                    "dataInicio": {
                        "type": "string"
                    },
                    "dataFim": {
                        "type": "string"
                    },
                    "numeroIrregularidade": {
                        "type": "string"
                    }
                },
                "required": [
                    "tipo"
                ]
            },
            "ProtocolInput": {
                "type": "object",
                "properties": {
                    "tipo": {
                        "type": "string",
                        "enum": [
                            "porLote",
                            "unitaria"
                        ]
                    },
                    "dataInicio": {
                        "type": "string"
                    },
                    "dataFim": {
                        "type": "string"
                    },
                    "numeroIrregularidade": {
                        "type": "string"
                    },
                    "dataConferencia": {
                        "type": "string"
                    }
                },
                "required": [
                    "tipo",
                    "dataConferencia"
                ]
            },
            "YearInput": {
                "type": "object",
                "properties": {
                    "ano": {
                        "type": "integer"
                    }
                },
                "required": [
                    "ano"
                ]
            }
        },
        "securitySchemes": {
            "bearer": {
                "type": "http",
                "scheme": "bearer",
                "bearerFormat": "JWT"
            }
        }
    },
    "security": [
        {
            "bearer": []
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "fiscaliza API",
	Description:      "Registro, consulta, validação e impressão de irregularidades do transporte coletivo",
	InfoInstanceName: "fiscaliza",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
