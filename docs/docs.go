// Package docs holds the OpenAPI description served at /swagger.
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
        "/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["overview"],
                "summary": "Tournament overview counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Overview"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/reference": {
            "get": {
                "description": "Always answers 200. A collection that failed to load is returned empty.",
                "produces": ["application/json"],
                "tags": ["overview"],
                "summary": "Teams and non-staff players",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.ReferenceData"}}
                }
            }
        },
        "/stats/scorers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Top scorers",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Entries to return (1-100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Leaderboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/stats/assists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Top assist providers",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Entries to return (1-100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Leaderboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Group standings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Standings"}}
                }
            }
        },
        "/fixtures": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fixtures"],
                "summary": "Round-robin schedule per group with recorded results",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.FixtureList"}}
                }
            }
        },
        "/knockout": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fixtures"],
                "summary": "Knockout bracket seeded from the current standings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.KnockoutProjection"}}
                }
            }
        },
        "/publications": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Publish a standings snapshot to the public bucket",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.PublishResult"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/matches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Recorded matches",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Match"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Register a match in one request",
                "parameters": [
                    {"description": "Match and goal rows", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.registerMatchInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.SubmitResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Start a match draft",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.DraftView"}}
                }
            }
        },
        "/drafts/{draftID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Get a match draft",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DraftView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["drafts"],
                "summary": "Discard a match draft",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts/{draftID}/match": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Set one field of the draft match",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"description": "Field and value", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.fieldUpdateInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DraftView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts/{draftID}/goals": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Append a blank goal row",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DraftView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts/{draftID}/goals/{index}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Set one field of a goal row",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"type": "integer", "description": "Goal row index", "name": "index", "in": "path", "required": true},
                    {"description": "Field and value", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.fieldUpdateInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DraftView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts/{draftID}/players": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Players of the teams selected in the draft",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Player"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/drafts/{draftID}/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Writes the match, then each goal row with a scorer. The draft is reset on success.",
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Register the drafted match and its goals",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.SubmitResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.fieldUpdateInput": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "value": {"type": "string"}}
        },
        "handlers.registerMatchInput": {
            "type": "object",
            "properties": {
                "match": {"$ref": "#/definitions/models.MatchDraft"},
                "goals": {"type": "array", "items": {"$ref": "#/definitions/models.GoalDraft"}}
            }
        },
        "models.MatchDraft": {
            "type": "object",
            "properties": {
                "home_team_id": {"type": "string"},
                "away_team_id": {"type": "string"},
                "home_goals": {"type": "integer"},
                "away_goals": {"type": "integer"},
                "round": {"type": "integer"}
            }
        },
        "models.GoalDraft": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "assist_id": {"type": "string"},
                "minute": {"type": "string"}
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "home_team_id": {"type": "integer"},
                "away_team_id": {"type": "integer"},
                "home_goals": {"type": "integer"},
                "away_goals": {"type": "integer"},
                "round": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "models.Goal": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "match_id": {"type": "integer"},
                "player_id": {"type": "integer"},
                "assist_player_id": {"type": "integer"},
                "minute": {"type": "integer"}
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "group": {"type": "string"}}
        },
        "models.Player": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "shirt_number": {"type": "integer"},
                "position": {"type": "string"},
                "team_id": {"type": "integer"},
                "is_staff": {"type": "boolean"},
                "team_name": {"type": "string"}
            }
        },
        "models.Overview": {
            "type": "object",
            "properties": {
                "teams_total": {"type": "integer"},
                "players_total": {"type": "integer"},
                "groups_total": {"type": "integer"},
                "current_round": {"type": "integer"}
            }
        },
        "models.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "player_id": {"type": "integer"},
                "player_name": {"type": "string"},
                "team_name": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "models.StandingRow": {
            "type": "object",
            "properties": {
                "team_id": {"type": "integer"},
                "team_name": {"type": "string"},
                "group": {"type": "string"},
                "played": {"type": "integer"},
                "wins": {"type": "integer"},
                "draws": {"type": "integer"},
                "losses": {"type": "integer"},
                "goals_for": {"type": "integer"},
                "goals_against": {"type": "integer"},
                "goal_difference": {"type": "integer"},
                "points": {"type": "integer"}
            }
        },
        "models.GroupStandings": {
            "type": "object",
            "properties": {
                "group": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/models.StandingRow"}}
            }
        },
        "services.ReferenceData": {
            "type": "object",
            "properties": {
                "teams": {"type": "array", "items": {"$ref": "#/definitions/models.Team"}},
                "players": {"type": "array", "items": {"$ref": "#/definitions/models.Player"}},
                "loaded": {"type": "boolean"}
            }
        },
        "services.Leaderboard": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.LeaderboardEntry"}},
                "message": {"type": "string"}
            }
        },
        "services.Standings": {
            "type": "object",
            "properties": {
                "groups": {"type": "array", "items": {"$ref": "#/definitions/models.GroupStandings"}},
                "matches_played": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "services.DraftView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "match": {"$ref": "#/definitions/models.MatchDraft"},
                "goals": {"type": "array", "items": {"$ref": "#/definitions/models.GoalDraft"}},
                "status": {"type": "string", "enum": ["idle", "submitting"]},
                "message": {"type": "string"}
            }
        },
        "services.SubmitResult": {
            "type": "object",
            "properties": {
                "match": {"$ref": "#/definitions/models.Match"},
                "goals": {"type": "array", "items": {"$ref": "#/definitions/models.Goal"}},
                "goals_failed": {"type": "integer"},
                "goals_skipped": {"type": "integer"}
            }
        },
        "fixtures.Entrant": {
            "type": "object",
            "properties": {"team_id": {"type": "integer"}, "label": {"type": "string"}}
        },
        "fixtures.Slot": {
            "type": "object",
            "properties": {
                "entrant": {"$ref": "#/definitions/fixtures.Entrant"},
                "winner_of": {"type": "string"}
            }
        },
        "fixtures.KnockoutMatch": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "round": {"type": "integer"},
                "order": {"type": "integer"},
                "home": {"$ref": "#/definitions/fixtures.Slot"},
                "away": {"$ref": "#/definitions/fixtures.Slot"},
                "bye": {"type": "boolean"}
            }
        },
        "services.ScheduledFixture": {
            "type": "object",
            "properties": {
                "round": {"type": "integer"},
                "order": {"type": "integer"},
                "home_team_id": {"type": "integer"},
                "away_team_id": {"type": "integer"},
                "played": {"type": "boolean"},
                "home_goals": {"type": "integer"},
                "away_goals": {"type": "integer"}
            }
        },
        "services.GroupFixtures": {
            "type": "object",
            "properties": {
                "group": {"type": "string"},
                "fixtures": {"type": "array", "items": {"$ref": "#/definitions/services.ScheduledFixture"}}
            }
        },
        "services.FixtureList": {
            "type": "object",
            "properties": {
                "groups": {"type": "array", "items": {"$ref": "#/definitions/services.GroupFixtures"}},
                "message": {"type": "string"}
            }
        },
        "services.KnockoutProjection": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/fixtures.KnockoutMatch"}},
                "message": {"type": "string"}
            }
        },
        "services.PublishResult": {
            "type": "object",
            "properties": {"latest_url": {"type": "string"}, "archive_url": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Supertaça results API",
	Description:      "Match registration and public statistics for the Supertaça tournament.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
