package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func Test_Negotiate_JSONContentAndAccept_Passes(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/trucks", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, "application/json")

	// Act
	rejected, err := negotiate(contextFor(req), true)

	// Assert
	assert.False(t, rejected)
	assert.NoError(t, err)
}

func Test_Negotiate_NonJSONBody_Returns415(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/trucks", strings.NewReader("<truck/>"))
	req.Header.Set(echo.HeaderContentType, "text/xml")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	// Act
	rejected, err := negotiate(c, true)

	// Assert
	require.True(t, rejected, "non-JSON body must be reported as rejected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "Unsupported Media Type", rec.Body.String())
}

func Test_Negotiate_AcceptExcludesJSON_Returns406(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/trucks", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	// Act
	rejected, err := negotiate(c, false)

	// Assert
	require.True(t, rejected, "excluded Accept must be reported as rejected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Equal(t, "Not Acceptable", rec.Body.String())
}

// recordingTruckRepository counts writes so tests can prove a rejected
// request never reached persistence.
type recordingTruckRepository struct {
	addCalls int
	lastID   kernel.EntityID
}

func (r *recordingTruckRepository) Add(_ context.Context, aggregate *truck.Truck) error {
	r.addCalls++
	id, err := kernel.NewEntityID(int64(r.addCalls))
	if err != nil {
		return err
	}
	r.lastID = id
	return aggregate.SetID(id)
}

func (r *recordingTruckRepository) Update(context.Context, *truck.Truck) error { return nil }

func (r *recordingTruckRepository) Get(context.Context, kernel.EntityID) (*truck.Truck, error) {
	return nil, nil
}

func (r *recordingTruckRepository) GetList(context.Context, int, int) ([]*truck.Truck, bool, error) {
	return nil, false, nil
}

func (r *recordingTruckRepository) Remove(context.Context, kernel.EntityID) error { return nil }

func (r *recordingTruckRepository) IDOfAddedEntity() kernel.EntityID { return r.lastID }

func (r *recordingTruckRepository) IDOfDeletedEntity() kernel.EntityID { return kernel.EntityID{} }

// recordingTruckUoW satisfies the truck unit of work without a database.
type recordingTruckUoW struct {
	repo *recordingTruckRepository
}

func (u *recordingTruckUoW) Begin(context.Context) error            { return nil }
func (u *recordingTruckUoW) Commit(context.Context) error           { return nil }
func (u *recordingTruckUoW) Rollback(context.Context) error         { return nil }
func (u *recordingTruckUoW) TruckRepository() ports.TruckRepository { return u.repo }

type recordingTruckUoWFactory struct {
	uow *recordingTruckUoW
}

func (f *recordingTruckUoWFactory) Create() commands.TruckUoW { return f.uow }

func createTruckTestServer(repo *recordingTruckRepository) *echo.Echo {
	factory := &recordingTruckUoWFactory{uow: &recordingTruckUoW{repo: repo}}
	server := &Server{createTruckHandler: commands.NewCreateTruckCommandHandler(factory)}

	e := echo.New()
	e.POST("/trucks", server.CreateTruck, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(authSubjectKey, "auth0|manager-1")
			return next(c)
		}
	})
	return e
}

func Test_CreateTruck_RejectedAccept_NeverReachesUseCase(t *testing.T) {
	// Arrange
	repo := &recordingTruckRepository{}
	e := createTruckTestServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/trucks",
		strings.NewReader(`{"type":"flatbed","length":12,"axles":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Equal(t, "Not Acceptable", rec.Body.String())
	assert.Zero(t, repo.addCalls, "rejected request must not create anything")
}

func Test_CreateTruck_RejectedContentType_NeverReachesUseCase(t *testing.T) {
	// Arrange
	repo := &recordingTruckRepository{}
	e := createTruckTestServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/trucks", strings.NewReader("<truck/>"))
	req.Header.Set(echo.HeaderContentType, "text/xml")
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "Unsupported Media Type", rec.Body.String())
	assert.Zero(t, repo.addCalls, "rejected request must not create anything")
}

func Test_CreateTruck_AcceptedRequest_CreatesTruck(t *testing.T) {
	// Arrange
	repo := &recordingTruckRepository{}
	e := createTruckTestServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/trucks",
		strings.NewReader(`{"type":"flatbed","length":12,"axles":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, "application/json")
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, repo.addCalls)
	assert.Contains(t, rec.Body.String(), `"owner":"auth0|manager-1"`)
}

func Test_RequestWeight_RejectsSubMilliPrecision(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"integer", "12", false},
		{"milli precision", "0.001", false},
		{"trailing zeros equal after truncation", "12.500", false},
		{"sub-milli", "0.0004", true},
		{"four decimals", "12.5001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			value, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)

			// Act
			_, err = requestWeight(value)

			// Assert
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_AcceptsJSON_Variants(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   bool
	}{
		{"no header accepts anything", "", true},
		{"exact media type", "application/json", true},
		{"wildcard", "*/*", true},
		{"type wildcard", "application/*", true},
		{"with quality parameter", "application/json; q=0.9", true},
		{"json among alternatives", "text/html, application/json", true},
		{"html only", "text/html", false},
		{"image wildcard", "image/*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/packages", nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}

			// Act & Assert
			assert.Equal(t, tt.want, acceptsJSON(contextFor(req)))
		})
	}
}

func Test_IsJSONContent_AllowsCharsetParameter(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, "application/json; charset=utf-8")

	// Act & Assert
	assert.True(t, isJSONContent(contextFor(req)))
}

func Test_QueryOffset_MalformedValuesFallBackToZero(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent", "", 0},
		{"valid", "offset=10", 10},
		{"negative", "offset=-5", 0},
		{"garbage", "offset=ten", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/trucks?"+tt.query, nil)

			// Act & Assert
			assert.Equal(t, tt.want, queryOffset(contextFor(req)))
		})
	}
}

func Test_NextLink_PresentOnlyWhenMorePagesExist(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/trucks", nil)
	req.Host = "freight.test"
	c := contextFor(req)

	// Act
	withMore := nextLink(c, "/trucks", 5, 5, true)
	lastPage := nextLink(c, "/trucks", 5, 5, false)

	// Assert
	require.NotNil(t, withMore)
	assert.Equal(t, "http://freight.test/trucks?limit=5&offset=10", *withMore)
	assert.Nil(t, lastPage)
}

func Test_PatchOf_NilMeansUnset(t *testing.T) {
	// Arrange
	value := 12

	// Act
	set := patchOf(&value)
	unset := patchOf[int](nil)

	// Assert
	assert.True(t, set.IsSet())
	assert.Equal(t, 12, set.Value())
	assert.False(t, unset.IsSet())
}
