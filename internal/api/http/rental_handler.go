package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	bookingSvc service.BookingService
	imageSvc   service.ImageStorageService
}

func NewRentalHandler(rentalSvc service.RentalService, bookingSvc service.BookingService, imageSvc service.ImageStorageService) *RentalHandler {
	return &RentalHandler{
		rentalSvc:  rentalSvc,
		bookingSvc: bookingSvc,
		imageSvc:   imageSvc,
	}
}

type listingRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	PricePerDayCents  int64    `json:"price_per_day_cents"`
	Category          string   `json:"category"`
	Location          string   `json:"location"`
	AvailabilityStart string   `json:"availability_start"`
	AvailabilityEnd   string   `json:"availability_end"`
	Features          []string `json:"features"`
}

func (req *listingRequest) toDomain() (*domain.RentalItem, error) {
	start, err := parseDate(req.AvailabilityStart)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.AvailabilityEnd)
	if err != nil {
		return nil, err
	}
	return &domain.RentalItem{
		Title:            req.Title,
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		Category:         req.Category,
		Location:         req.Location,
		Availability:     domain.DateWindow{Start: start, End: end},
		Features:         req.Features,
	}, nil
}

func (h *RentalHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "availability dates must be yyyy-mm-dd"})
		return
	}

	if err := h.rentalSvc.CreateListing(r.Context(), claims.UID, item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *RentalHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, images, err := h.rentalSvc.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item":   item,
		"images": images,
	})
}

func (h *RentalHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "availability dates must be yyyy-mm-dd"})
		return
	}
	item.ID = mux.Vars(r)["id"]

	if err := h.rentalSvc.UpdateListing(r.Context(), claims.UID, item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RentalHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	if err := h.rentalSvc.DeleteListing(r.Context(), claims.UID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	items, err := h.rentalSvc.ListListings(r.Context(), r.URL.Query().Get("category"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *RentalHandler) ListMyListings(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	page, pageSize := pagination(r)
	items, err := h.rentalSvc.ListMyListings(r.Context(), claims.UID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *RentalHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.rentalSvc.ListCategories(r.Context()),
	})
}

// GetQuote prices a candidate range. The same engine call later backs the
// server-side re-check, so the calendar can never show a price the
// booking path would reject.
func (h *RentalHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "start must be yyyy-mm-dd"})
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "end must be yyyy-mm-dd"})
		return
	}

	quote, available, err := h.bookingSvc.QuoteBooking(r.Context(), mux.Vars(r)["id"], start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote":     quote,
		"available": available,
	})
}

// GetAvailability answers both forms the calendar asks: a single date
// (?date=) or a whole range (?start=&end=).
func (h *RentalHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	q := r.URL.Query()

	if dateStr := q.Get("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be yyyy-mm-dd"})
			return
		}
		available, err := h.bookingSvc.CheckDateAvailability(r.Context(), id, date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"available": available})
		return
	}

	start, err := parseDate(q.Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date or start/end query parameters required"})
		return
	}
	end, err := parseDate(q.Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "end must be yyyy-mm-dd"})
		return
	}
	available, err := h.bookingSvc.CheckRangeAvailability(r.Context(), id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"available": available})
}

type uploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

func (h *RentalHandler) RequestImageUpload(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	image, uploadURL, err := h.imageSvc.GetUploadURL(r.Context(), claims.UID, mux.Vars(r)["id"], req.FileName, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"image":      image,
		"upload_url": uploadURL,
	})
}

func (h *RentalHandler) ConfirmImageUpload(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	image, err := h.imageSvc.ConfirmImageUpload(r.Context(), claims.UID, mux.Vars(r)["imageId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *RentalHandler) GetImageDownloadURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.imageSvc.GetDownloadURL(r.Context(), mux.Vars(r)["imageId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *RentalHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	if err := h.imageSvc.DeleteImage(r.Context(), claims.UID, mux.Vars(r)["imageId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
