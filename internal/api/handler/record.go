package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aspect/anchor/internal/api/middleware"
	"github.com/aspect/anchor/internal/api/request"
	"github.com/aspect/anchor/internal/api/response"
	"github.com/aspect/anchor/internal/model"
	"github.com/aspect/anchor/internal/services/player"
)

// RecordHandler handles record endpoints
type RecordHandler struct {
	controller *player.Controller
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(controller *player.Controller) *RecordHandler {
	return &RecordHandler{
		controller: controller,
	}
}

// Initialize handles POST /api/v1/records/{address}
func (h *RecordHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	addr, err := addressFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	loc, err := req.Location.ToModel()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}
	car, err := req.Car.ToModel()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	caller := middleware.MustGetSigner(r.Context())
	record, err := h.controller.Initialize(r.Context(), caller, addr, req.Name, loc, car)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RecordFromModel(record))
}

// Get handles GET /api/v1/records/{address}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	addr, err := addressFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	record, err := h.controller.Get(r.Context(), addr)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record))
}

// UpdateLocation handles PUT /api/v1/records/{address}/location
func (h *RecordHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	addr, err := addressFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	loc, err := req.Location.ToModel()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	caller := middleware.MustGetSigner(r.Context())
	record, err := h.controller.UpdateLocation(r.Context(), caller, addr, loc)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record))
}

// UpdateCar handles PUT /api/v1/records/{address}/car
func (h *RecordHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	addr, err := addressFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	car, err := req.Car.ToModel()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	caller := middleware.MustGetSigner(r.Context())
	record, err := h.controller.UpdateCar(r.Context(), caller, addr, car)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record))
}

func addressFromRequest(r *http.Request) (model.Address, error) {
	raw := mux.Vars(r)["address"]
	addr, err := model.AddressFromHex(raw)
	if err != nil {
		return model.Address{}, NewInvalidRequestError("malformed address")
	}
	return addr, nil
}
