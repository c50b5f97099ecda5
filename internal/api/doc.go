// Package api contains the HTTP handlers, request/response DTOs and
// error mapping for the study-app API. Handlers stay thin: decode and
// validate the request, call one service operation, translate the
// outcome. All policy lives in the service layer.
package api
