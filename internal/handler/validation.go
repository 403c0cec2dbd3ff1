package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/service"
	"github.com/jengzang/route-terrain-go/pkg/response"
)

// RegisterValidators installs the coordinate range check on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	v.RegisterStructValidation(validateCoordinate, models.Coordinate{})
	return nil
}

func validateCoordinate(sl validator.StructLevel) {
	c := sl.Current().Interface().(models.Coordinate)
	if c.Lat < -90 || c.Lat > 90 {
		sl.ReportError(c.Lat, "Lat", "lat", "latitude", "")
	}
	if c.Lon < -180 || c.Lon > 180 {
		sl.ReportError(c.Lon, "Lon", "lon", "longitude", "")
	}
}

// bindError answers a failed ShouldBindJSON with a 400
func bindError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "latitude":
			problems = append(problems, fmt.Sprintf("%s: latitude must be within [-90, 90]", fe.Namespace()))
		case "longitude":
			problems = append(problems, fmt.Sprintf("%s: longitude must be within [-180, 180]", fe.Namespace()))
		default:
			problems = append(problems, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	response.Error(c, http.StatusBadRequest, response.CodeValidation, strings.Join(problems, "; "))
}

// serviceError maps the service error taxonomy onto HTTP responses
func serviceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, service.ErrAcquisition):
		response.Error(c, http.StatusBadGateway, response.CodeElevation, "elevation data is temporarily unavailable")
	case errors.Is(err, service.ErrUpstreamAuth):
		response.Error(c, http.StatusServiceUnavailable, response.CodeReasoningAuth,
			"the analysis service is not authorized: check the reasoning API key")
	case errors.Is(err, service.ErrUpstreamFailure):
		response.Error(c, http.StatusBadGateway, response.CodeReasoningFailed, "route analysis failed, please try again later")
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(c, http.StatusGatewayTimeout, response.CodeTimeout, "analysis timed out")
	default:
		response.InternalError(c, "internal server error")
	}
}
