package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogdash/internal/services"
	"blogdash/internal/utils"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// StatusPolicy decides between the historical per-endpoint status codes and
// the unified ones (400 for malformed ids, 404 for missing entities).
type StatusPolicy struct {
	UnifyNotFound bool
}

func (p StatusPolicy) pick(legacy, unified int) int {
	if p.UnifyNotFound {
		return unified
	}
	return legacy
}

// requireID validates an identifier and writes "Invalid or missing <field> id" on failure.
func requireID(w http.ResponseWriter, value, field string, status int) (primitive.ObjectID, bool) {
	id, ok := utils.ParseID(value)
	if !ok {
		utils.SendJSONError(w, fmt.Sprintf("Invalid or missing %s id", field), status)
		return primitive.NilObjectID, false
	}
	return id, true
}

func queryID(w http.ResponseWriter, r *http.Request, param, field string, status int) (primitive.ObjectID, bool) {
	return requireID(w, r.URL.Query().Get(param), field, status)
}

func pathID(w http.ResponseWriter, r *http.Request, param, field string, status int) (primitive.ObjectID, bool) {
	return requireID(w, mux.Vars(r)[param], field, status)
}

// decodeBody decodes and validates a JSON body, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("Invalid JSON body")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(v); err != nil {
		utils.SendJSONError(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing %s", field)
	default:
		return fmt.Sprintf("Invalid %s", field)
	}
}

// respondServiceError maps a service error: not-found errors get notFoundStatus,
// everything else is a persistence failure and answers 500 with its message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int) {
	if errors.Is(err, services.ErrNotFound) {
		utils.SendJSONError(w, err.Error(), notFoundStatus)
		return
	}

	hlog.FromRequest(r).Error().Err(err).Msg("Request failed")
	utils.RespondWithServerError(w, err)
}
