package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shopspot-be/internal/product"
	"shopspot-be/internal/utils"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Photo       string `json:"photo"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	Photo       *string `json:"photo"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := product.ListParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if v := q.Get("maxPrice"); v != "" {
		params.MaxPrice, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := q.Get("page"); v != "" {
		params.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		params.Limit, _ = strconv.Atoi(v)
	}

	products, err := h.products.List(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, product.ErrProductNotFound)
		return
	}

	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, p)
}

func (h *ProductHandler) Latest(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Latest(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, products)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Featured(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, products)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, categories)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, product.ErrMissingFields)
		return
	}

	p, err := h.products.Create(r.Context(), product.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Photo:       req.Photo,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "product created", p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, product.ErrProductNotFound)
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, product.ErrMissingFields)
		return
	}

	p, err := h.products.Update(r.Context(), id, product.UpdateParams{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Photo:       req.Photo,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "product updated", p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, product.ErrProductNotFound)
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "product deleted", nil)
}

func (h *ProductHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, product.ErrProductNotFound)
		return
	}

	p, err := h.products.ToggleFeatured(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, p)
}
