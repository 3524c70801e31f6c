package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omerga/whereabouts-backend-go/internal/service"
	"github.com/omerga/whereabouts-backend-go/pkg/response"
)

// PersonHandler handles HTTP requests for the person directory and the
// API info page
type PersonHandler struct {
	directory *service.DirectoryService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(directory *service.DirectoryService) *PersonHandler {
	return &PersonHandler{directory: directory}
}

// GetPersons handles GET /api/v1/persons
func (h *PersonHandler) GetPersons(c *gin.Context) {
	response.Success(c, gin.H{
		"persons": h.directory.Persons(c.Request.Context()),
	})
}

// Info handles GET / with API information and generated example queries
func (h *PersonHandler) Info(c *gin.Context) {
	persons := h.directory.Persons(c.Request.Context())

	var examples, multiPersonExamples []string
	if len(persons) > 0 {
		first := persons[0]
		examples = append(examples,
			fmt.Sprintf("Where was %s between 8am and 11am?", first),
			fmt.Sprintf("Where was %s at 3pm?", first),
		)
		if len(persons) > 1 {
			second := persons[1]
			examples = append(examples,
				fmt.Sprintf("What locations did %s visit throughout the day?", second),
				fmt.Sprintf("Show me %s's movement pattern in the afternoon", second),
			)
			multiPersonExamples = append(multiPersonExamples,
				fmt.Sprintf("Where were %s and %s at 3pm?", first, second),
				fmt.Sprintf("Were there any locations where %s and %s were together?", first, second),
				fmt.Sprintf("Show me the movement of %s and %s during the morning", first, second),
			)
			if len(persons) > 2 {
				third := persons[2]
				examples = append(examples, fmt.Sprintf("Where was %s during lunch time?", third))
				multiPersonExamples = append(multiPersonExamples,
					fmt.Sprintf("Compare the locations of %s and %s at noon", second, third),
				)
			}
		}
	}

	response.Success(c, gin.H{
		"message":           "Whereabouts Backend API",
		"description":       fmt.Sprintf("Query location data for people (%s) using natural language", strings.Join(persons, ", ")),
		"available_persons": persons,
		"endpoints": gin.H{
			"/api/v1/query":   "POST - Submit natural language location queries",
			"/api/v1/persons": "GET - Get list of available persons",
			"/api/v1/scene":   "GET - Get the derived map scene",
			"/api/v1/samples": "GET/POST - Read or ingest stored location samples",
		},
		"single_person_examples": examples,
		"multi_person_examples":  multiPersonExamples,
		"features": []string{
			"Single-person location queries",
			"Multi-person location comparisons",
			"Proximity clustering for map display",
			"Time-based marker sizing",
			"Per-person visibility toggles",
		},
	})
}
