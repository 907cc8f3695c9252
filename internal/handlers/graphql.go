package handlers

import (
	"net/http"

	"github.com/causeconnect-dev/causeconnect/internal/graph"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
)

// GraphQLRequest is the standard GraphQL-over-HTTP POST body.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
	Code    string        `json:"code"`
}

// GraphQL executes a query against the schema. Resolver failures stay inside
// the GraphQL error channel; only a malformed request body is an HTTP error.
func GraphQL(schema *graph.Schema) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req GraphQLRequest

		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema.GetSchema(),
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx.Request.Context(),
		})

		response := gin.H{"data": result.Data}
		if len(result.Errors) > 0 {
			response["errors"] = formatErrors(result.Errors)
		}

		ctx.JSON(http.StatusOK, response)
	}
}

// formatErrors normalizes every error to {message, path, code}, defaulting
// the code when the resolver did not set one.
func formatErrors(formattedErrors []gqlerrors.FormattedError) []GraphQLError {
	out := make([]GraphQLError, 0, len(formattedErrors))

	for _, formattedError := range formattedErrors {
		code := graph.CodeInternal
		if value, ok := formattedError.Extensions["code"].(string); ok {
			code = value
		}

		out = append(out, GraphQLError{
			Message: formattedError.Message,
			Path:    formattedError.Path,
			Code:    code,
		})
	}

	return out
}
