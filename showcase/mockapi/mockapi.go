// Package mockapi serves a product list in the shape the showcase expects.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"vitrine/showcase/catalog"
)

// ProductsPath is the route the showcase fetches by default.
const ProductsPath = "/api/products"

// Router wraps the mux router and the served product list.
type Router struct {
	*mux.Router
	list catalog.ProductList
	log  *slog.Logger
}

// NewRouter creates a router serving list.
func NewRouter(list catalog.ProductList, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{
		Router: mux.NewRouter(),
		list:   list,
		log:    log,
	}

	r.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", r.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{index:[0-9]+}", r.getProduct).Methods(http.MethodGet)

	return r
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"products": r.list.Len(),
	})
}

func (r *Router) listProducts(w http.ResponseWriter, req *http.Request) {
	b, err := catalog.EncodeProductList(r.list)
	if err != nil {
		r.log.Error("encode_failed", "err", err)
		respondError(w, http.StatusInternalServerError, "encode failed")
		return
	}
	r.log.Debug("products_served", "count", r.list.Len(), "remote", req.RemoteAddr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (r *Router) getProduct(w http.ResponseWriter, req *http.Request) {
	i, err := strconv.Atoi(mux.Vars(req)["index"])
	if err != nil || i >= r.list.Len() {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, r.list.Products[i])
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// LoadFile reads a product list from a JSON file.
func LoadFile(path string) (catalog.ProductList, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return catalog.ProductList{}, errors.Wrap(err, "read product file")
	}
	list, err := catalog.DecodeProductList(b)
	if err != nil {
		return catalog.ProductList{}, errors.Wrapf(err, "decode %s", path)
	}
	return list, nil
}

// Sample returns the built-in demo catalog.
func Sample() catalog.ProductList {
	p := func(name, desc, price string) catalog.Product {
		return catalog.NewProduct(name, desc, decimal.RequireFromString(price))
	}
	return catalog.ProductList{Products: []catalog.Product{
		p("Desk Lamp", "Adjustable arm, warm LED", "34.90"),
		p("Oak Chair", "Solid oak, oiled finish", "129"),
		p("Ceramic Mug", "350 ml, dishwasher safe", "12.5"),
		p("Wool Throw", "Merino, 130x170 cm", "79.99"),
		p("Plant Pot", "Terracotta, 18 cm", "9.75"),
	}}
}
