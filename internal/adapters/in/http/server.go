package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTruckHandler     commands.CreateTruckCommandHandler
	editTruckHandler       commands.EditTruckCommandHandler
	deleteTruckHandler     commands.DeleteTruckCommandHandler
	createPackageHandler   commands.CreatePackageCommandHandler
	editPackageHandler     commands.EditPackageCommandHandler
	deletePackageHandler   commands.DeletePackageCommandHandler
	assignPackageHandler   commands.AssignPackageCommandHandler
	unassignPackageHandler commands.UnassignPackageCommandHandler
	createManagerHandler   commands.CreateManagerCommandHandler

	// Query handlers
	getTruckHandler           queries.GetTruckQueryHandler
	getTrucksHandler          queries.GetTrucksQueryHandler
	getPackageHandler         queries.GetPackageQueryHandler
	getPackagesHandler        queries.GetPackagesQueryHandler
	getManagersHandler        queries.GetManagersQueryHandler
	getManagerByAuthIDHandler queries.GetManagerByAuthIDQueryHandler

	pageSize int
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createTruckHandler commands.CreateTruckCommandHandler,
	editTruckHandler commands.EditTruckCommandHandler,
	deleteTruckHandler commands.DeleteTruckCommandHandler,
	createPackageHandler commands.CreatePackageCommandHandler,
	editPackageHandler commands.EditPackageCommandHandler,
	deletePackageHandler commands.DeletePackageCommandHandler,
	assignPackageHandler commands.AssignPackageCommandHandler,
	unassignPackageHandler commands.UnassignPackageCommandHandler,
	createManagerHandler commands.CreateManagerCommandHandler,
	getTruckHandler queries.GetTruckQueryHandler,
	getTrucksHandler queries.GetTrucksQueryHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	getPackagesHandler queries.GetPackagesQueryHandler,
	getManagersHandler queries.GetManagersQueryHandler,
	getManagerByAuthIDHandler queries.GetManagerByAuthIDQueryHandler,
	pageSize int,
) *Server {
	return &Server{
		createTruckHandler:        createTruckHandler,
		editTruckHandler:          editTruckHandler,
		deleteTruckHandler:        deleteTruckHandler,
		createPackageHandler:      createPackageHandler,
		editPackageHandler:        editPackageHandler,
		deletePackageHandler:      deletePackageHandler,
		assignPackageHandler:      assignPackageHandler,
		unassignPackageHandler:    unassignPackageHandler,
		createManagerHandler:      createManagerHandler,
		getTruckHandler:           getTruckHandler,
		getTrucksHandler:          getTrucksHandler,
		getPackageHandler:         getPackageHandler,
		getPackagesHandler:        getPackagesHandler,
		getManagersHandler:        getManagersHandler,
		getManagerByAuthIDHandler: getManagerByAuthIDHandler,
		pageSize:                  pageSize,
	}
}

// RegisterRoutes wires the resource routes into the echo instance.
// Truck routes require a bearer token; package and manager routes are open.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier *TokenVerifier, metrics *Metrics) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(metrics.Middleware())

	trucks := e.Group("/trucks", BearerAuth(verifier), s.ensureManager)
	trucks.POST("", s.CreateTruck)
	trucks.GET("", s.GetTrucks)
	trucks.GET("/:truck_id", s.GetTruck)
	trucks.PATCH("/:truck_id", s.PatchTruck)
	trucks.PUT("/:truck_id", s.PutTruck)
	trucks.DELETE("/:truck_id", s.DeleteTruck)
	trucks.PUT("/:truck_id/packages/:package_id", s.AssignPackage)
	trucks.DELETE("/:truck_id/packages/:package_id", s.UnassignPackage)

	e.POST("/packages", s.CreatePackage)
	e.GET("/packages", s.GetPackages)
	e.GET("/packages/:package_id", s.GetPackage)
	e.PATCH("/packages/:package_id", s.PatchPackage)
	e.PUT("/packages/:package_id", s.PutPackage)
	e.DELETE("/packages/:package_id", s.DeletePackage)

	e.GET("/truckmanagers", s.GetTruckManagers)

	e.GET("/health", s.Health)
	e.GET("/metrics", metrics.Handler())
}

// ensureManager registers an unseen auth subject as a truck manager before
// the first authenticated truck operation proceeds. Deduplication is this
// caller's job: the create use case itself never deduplicates.
func (s *Server) ensureManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		subject := authSubject(c)
		ctx := c.Request().Context()

		query, err := queries.NewGetManagerByAuthIDQuery(subject)
		if err != nil {
			return internalError(c)
		}

		existing, err := s.getManagerByAuthIDHandler.Handle(ctx, query)
		if err != nil {
			return internalError(c)
		}

		if existing == nil {
			cmd, cmdErr := commands.NewCreateManagerCommand(subject)
			if cmdErr != nil {
				return internalError(c)
			}
			if _, cmdErr = s.createManagerHandler.Handle(ctx, cmd); cmdErr != nil {
				return internalError(c)
			}
		}

		return next(c)
	}
}

// CreateTruck handles POST /trucks.
func (s *Server) CreateTruck(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	var req TruckRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if req.Type == nil || req.Length == nil || req.Axles == nil {
		return badRequest(c)
	}

	cmd, err := commands.NewCreateTruckCommand(*req.Type, *req.Length, *req.Axles, authSubject(c))
	if err != nil {
		return badRequest(c)
	}

	truckID, err := s.createTruckHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.truckError(c, err)
	}

	return c.JSON(http.StatusCreated, TruckResponse{
		ID:       truckID.Int64(),
		Type:     *req.Type,
		Length:   *req.Length,
		Axles:    *req.Axles,
		Packages: []EntityRef{},
		Owner:    authSubject(c),
		Self:     truckSelf(c, truckID),
	})
}

// GetTrucks handles GET /trucks.
func (s *Server) GetTrucks(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	offset := queryOffset(c)
	query, err := queries.NewGetTrucksQuery(s.pageSize, offset)
	if err != nil {
		return badRequest(c)
	}

	page, err := s.getTrucksHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	trucks := make([]TruckResponse, 0, len(page.Trucks))
	for _, t := range page.Trucks {
		trucks = append(trucks, s.truckResponse(c, t))
	}

	return c.JSON(http.StatusOK, TrucksPageResponse{
		Trucks: trucks,
		Next:   nextLink(c, "/trucks", s.pageSize, offset, page.HasMore),
	})
}

// GetTruck handles GET /trucks/:truck_id.
func (s *Server) GetTruck(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}

	query, err := queries.NewGetTruckQuery(truckID)
	if err != nil {
		return truckNotFound(c)
	}

	truckView, err := s.getTruckHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.truckError(c, err)
	}

	if truckView.Owner != authSubject(c) {
		return ownershipDenied(c)
	}

	return c.JSON(http.StatusOK, s.truckResponse(c, truckView))
}

// PatchTruck handles PATCH /trucks/:truck_id - partial update.
func (s *Server) PatchTruck(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}

	var req TruckRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewEditTruckCommand(
		truckID,
		authSubject(c),
		patchOf(req.Type),
		patchOf(req.Length),
		patchOf(req.Axles),
		false,
	)
	if err != nil {
		return badRequest(c)
	}

	edited, err := s.editTruckHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.truckError(c, err)
	}

	return c.JSON(http.StatusOK, TruckResponse{
		ID:       edited.ID().Int64(),
		Type:     edited.TruckType(),
		Length:   edited.Length(),
		Axles:    edited.Axles(),
		Packages: packageRefs(c, edited.PackageIDs().Values()),
		Owner:    edited.Owner(),
		Self:     truckSelf(c, edited.ID()),
	})
}

// PutTruck handles PUT /trucks/:truck_id - full replace. All attributes are
// required and the truck's package assignments are cleared.
func (s *Server) PutTruck(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}

	var req TruckRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if req.Type == nil || req.Length == nil || req.Axles == nil {
		return badRequest(c)
	}

	cmd, err := commands.NewEditTruckCommand(
		truckID,
		authSubject(c),
		commands.PatchOf(*req.Type),
		commands.PatchOf(*req.Length),
		commands.PatchOf(*req.Axles),
		true,
	)
	if err != nil {
		return badRequest(c)
	}

	if _, err = s.editTruckHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.truckError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, truckSelf(c, truckID))
	return c.NoContent(http.StatusSeeOther)
}

// DeleteTruck handles DELETE /trucks/:truck_id.
func (s *Server) DeleteTruck(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}

	cmd, err := commands.NewDeleteTruckCommand(truckID, authSubject(c))
	if err != nil {
		return badRequest(c)
	}

	deleted, err := s.deleteTruckHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.truckError(c, err)
	}
	if !deleted {
		return truckNotFound(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignPackage handles PUT /trucks/:truck_id/packages/:package_id.
func (s *Server) AssignPackage(c echo.Context) error {
	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}
	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	cmd, err := commands.NewAssignPackageCommand(truckID, packageID, authSubject(c))
	if err != nil {
		return badRequest(c)
	}

	if err = s.assignPackageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.truckError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UnassignPackage handles DELETE /trucks/:truck_id/packages/:package_id.
func (s *Server) UnassignPackage(c echo.Context) error {
	truckID, err := kernel.ParseEntityID(c.Param("truck_id"))
	if err != nil {
		return truckNotFound(c)
	}
	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	cmd, err := commands.NewUnassignPackageCommand(truckID, packageID, authSubject(c))
	if err != nil {
		return badRequest(c)
	}

	if err = s.unassignPackageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.truckError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if req.ShippingType == nil || req.Weight == nil || req.ShippingDate == nil {
		return badRequest(c)
	}

	weight, err := requestWeight(*req.Weight)
	if err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewCreatePackageCommand(
		*req.ShippingType, weight, kernel.ShipDateFromTime(req.ShippingDate.Time))
	if err != nil {
		return badRequest(c)
	}

	packageID, err := s.createPackageHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.packageError(c, err)
	}

	return c.JSON(http.StatusCreated, PackageResponse{
		ID:           packageID.Int64(),
		ShippingType: *req.ShippingType,
		Weight:       *req.Weight,
		ShippingDate: *req.ShippingDate,
		Carrier:      nil,
		Self:         packageSelf(c, packageID),
	})
}

// GetPackages handles GET /packages.
func (s *Server) GetPackages(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	offset := queryOffset(c)
	query, err := queries.NewGetPackagesQuery(s.pageSize, offset)
	if err != nil {
		return badRequest(c)
	}

	page, err := s.getPackagesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	packages := make([]PackageResponse, 0, len(page.Packages))
	for _, p := range page.Packages {
		packages = append(packages, s.packageResponse(c, p))
	}

	return c.JSON(http.StatusOK, PackagesPageResponse{
		Packages: packages,
		Next:     nextLink(c, "/packages", s.pageSize, offset, page.HasMore),
	})
}

// GetPackage handles GET /packages/:package_id.
func (s *Server) GetPackage(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return packageNotFound(c)
	}

	packageView, err := s.getPackageHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.packageError(c, err)
	}

	return c.JSON(http.StatusOK, s.packageResponse(c, packageView))
}

// PatchPackage handles PATCH /packages/:package_id - partial update.
func (s *Server) PatchPackage(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	var req PackageRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}

	weightPatch := commands.Patch[kernel.Weight]{}
	if req.Weight != nil {
		weight, weightErr := requestWeight(*req.Weight)
		if weightErr != nil {
			return badRequest(c)
		}
		weightPatch = commands.PatchOf(weight)
	}

	datePatch := commands.Patch[kernel.ShipDate]{}
	if req.ShippingDate != nil {
		datePatch = commands.PatchOf(kernel.ShipDateFromTime(req.ShippingDate.Time))
	}

	cmd, err := commands.NewEditPackageCommand(
		packageID, patchOf(req.ShippingType), weightPatch, datePatch, false)
	if err != nil {
		return badRequest(c)
	}

	edited, err := s.editPackageHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.packageError(c, err)
	}

	var carrier *EntityRef
	if edited.CarrierID() != nil {
		carrier = &EntityRef{
			ID:   edited.CarrierID().Int64(),
			Self: truckSelf(c, *edited.CarrierID()),
		}
	}

	return c.JSON(http.StatusOK, PackageResponse{
		ID:           edited.ID().Int64(),
		ShippingType: edited.ShippingType(),
		Weight:       edited.Weight().Decimal(),
		ShippingDate: types.Date{Time: edited.ShippingDate().Time()},
		Carrier:      carrier,
		Self:         packageSelf(c, edited.ID()),
	})
}

// PutPackage handles PUT /packages/:package_id - full replace. All
// attributes are required and the carrier assignment is cleared.
func (s *Server) PutPackage(c echo.Context) error {
	if rejected, err := negotiate(c, true); rejected {
		return err
	}

	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	var req PackageRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if req.ShippingType == nil || req.Weight == nil || req.ShippingDate == nil {
		return badRequest(c)
	}

	weight, err := requestWeight(*req.Weight)
	if err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewEditPackageCommand(
		packageID,
		commands.PatchOf(*req.ShippingType),
		commands.PatchOf(weight),
		commands.PatchOf(kernel.ShipDateFromTime(req.ShippingDate.Time)),
		true,
	)
	if err != nil {
		return badRequest(c)
	}

	if _, err = s.editPackageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.packageError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, packageSelf(c, packageID))
	return c.NoContent(http.StatusSeeOther)
}

// DeletePackage handles DELETE /packages/:package_id.
func (s *Server) DeletePackage(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	packageID, err := kernel.ParseEntityID(c.Param("package_id"))
	if err != nil {
		return packageNotFound(c)
	}

	cmd, err := commands.NewDeletePackageCommand(packageID)
	if err != nil {
		return badRequest(c)
	}

	deleted, err := s.deletePackageHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.packageError(c, err)
	}
	if !deleted {
		return packageNotFound(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetTruckManagers handles GET /truckmanagers.
func (s *Server) GetTruckManagers(c echo.Context) error {
	if rejected, err := negotiate(c, false); rejected {
		return err
	}

	query, err := queries.NewGetManagersQuery(s.pageSize, queryOffset(c))
	if err != nil {
		return badRequest(c)
	}

	page, err := s.getManagersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	users := make([]ManagerResponse, 0, len(page.Managers))
	for _, m := range page.Managers {
		users = append(users, ManagerResponse{AuthID: m.AuthID})
	}

	return c.JSON(http.StatusOK, ManagersResponse{Users: users})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// truckError maps use-case errors from truck operations to status codes.
func (s *Server) truckError(c echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		if notFoundErr.ParamName == "package_id" {
			return packageNotFound(c)
		}
		return truckNotFound(c)
	case errors.Is(err, commands.ErrNotTruckOwner):
		return ownershipDenied(c)
	case errors.Is(err, commands.ErrPackageAlreadyAssigned):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: "The package is already loaded on another truck",
		})
	default:
		return internalError(c)
	}
}

// packageError maps use-case errors from package operations to status codes.
func (s *Server) packageError(c echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return packageNotFound(c)
	}
	return internalError(c)
}

func (s *Server) truckResponse(c echo.Context, view queries.TruckResponse) TruckResponse {
	return TruckResponse{
		ID:       view.ID.Int64(),
		Type:     view.TruckType,
		Length:   view.Length,
		Axles:    view.Axles,
		Packages: packageRefs(c, view.PackageIDs),
		Owner:    view.Owner,
		Self:     truckSelf(c, view.ID),
	}
}

func (s *Server) packageResponse(c echo.Context, view queries.PackageResponse) PackageResponse {
	var carrier *EntityRef
	if view.CarrierID != nil {
		carrier = &EntityRef{
			ID:   view.CarrierID.Int64(),
			Self: truckSelf(c, *view.CarrierID),
		}
	}

	return PackageResponse{
		ID:           view.ID.Int64(),
		ShippingType: view.ShippingType,
		Weight:       view.Weight.Decimal(),
		ShippingDate: types.Date{Time: view.ShippingDate.Time()},
		Carrier:      carrier,
		Self:         packageSelf(c, view.ID),
	}
}

// negotiate enforces content negotiation: 415 when a bodied request is not
// application/json, 406 when the Accept header excludes application/json.
// It reports whether the request was rejected; a rejected request has its
// response committed already and must not reach a use case.
func negotiate(c echo.Context, hasBody bool) (bool, error) {
	if hasBody && !isJSONContent(c) {
		return true, c.String(http.StatusUnsupportedMediaType, "Unsupported Media Type")
	}
	if !acceptsJSON(c) {
		return true, c.String(http.StatusNotAcceptable, "Not Acceptable")
	}
	return false, nil
}

func isJSONContent(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, echo.MIMEApplicationJSON)
}

func acceptsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if accept == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mediaType {
		case "application/json", "application/*", "*/*":
			return true
		}
	}
	return false
}

// requestWeight converts the wire weight into the domain value object.
// The store keeps weights at milli precision, so anything finer is
// rejected rather than silently rounded away.
func requestWeight(value decimal.Decimal) (kernel.Weight, error) {
	if !value.Equal(value.Truncate(3)) {
		return kernel.Weight{}, errs.NewValueIsInvalidError("weight")
	}
	return kernel.NewWeight(value)
}

// patchOf converts an optional request field into a command patch:
// nil means leave unchanged, any supplied value is an update.
func patchOf[T any](value *T) commands.Patch[T] {
	if value == nil {
		return commands.Patch[T]{}
	}
	return commands.PatchOf(*value)
}

func queryOffset(c echo.Context) int {
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// nextLink builds the continuation link for a collection page, present only
// when a further page exists.
func nextLink(c echo.Context, path string, limit, offset int, hasMore bool) *string {
	if !hasMore {
		return nil
	}
	link := fmt.Sprintf("%s%s?limit=%d&offset=%d", baseURL(c), path, limit, offset+limit)
	return &link
}

func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func truckSelf(c echo.Context, id kernel.EntityID) string {
	return baseURL(c) + "/trucks/" + id.String()
}

func packageSelf(c echo.Context, id kernel.EntityID) string {
	return baseURL(c) + "/packages/" + id.String()
}

func packageRefs(c echo.Context, ids []kernel.EntityID) []EntityRef {
	refs := make([]EntityRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, EntityRef{ID: id.Int64(), Self: packageSelf(c, id)})
	}
	return refs
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "The request object is missing at least one of the required attributes",
	})
}

func truckNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "No truck with this truck_id exists",
	})
}

func packageNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "No package with this package_id exists",
	})
}

func ownershipDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{
		Error: "The truck belongs to another truck manager",
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
	})
}
