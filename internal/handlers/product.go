// internal/handlers/product.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-api/internal/i18n"
	"github.com/javajoker/product-api/internal/models"
	"github.com/javajoker/product-api/internal/services"
	"github.com/javajoker/product-api/internal/utils"
)

// ProductGateway is the data access the handlers need. *services.ProductService
// satisfies it.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (int64, error)
	UpdateProduct(ctx context.Context, product *models.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

type ProductHandler struct {
	productService ProductGateway
}

func NewProductHandler(productService ProductGateway) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		h.storeFault(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c)
			return
		}
		h.storeFault(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/products
//
// The store assigns the id but never hands it back, so the response and its
// Location header echo whatever id the caller sent (usually 0).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var product models.Product
	if err := bindJSON(c, &product); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if _, err := h.productService.CreateProduct(c.Request.Context(), &product); err != nil {
		h.storeFault(c, "create", err)
		return
	}

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(product.ID, 10)
	c.Header("Location", location)
	c.JSON(http.StatusCreated, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := bindJSON(c, &product); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if product.ID != id {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductIDMismatch, id, product.ID), nil)
		return
	}

	affected, err := h.productService.UpdateProduct(c.Request.Context(), &product)
	if err != nil {
		h.storeFault(c, "update", err)
		return
	}

	// Zero rows still answers 204.
	if affected == 0 {
		h.logger(c).WithField("product_id", id).Warn("update matched no product")
	}

	utils.NoContentResponse(c)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	affected, err := h.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.storeFault(c, "delete", err)
		return
	}

	// Zero rows still answers 204.
	if affected == 0 {
		h.logger(c).WithField("product_id", id).Warn("delete matched no product")
	}

	utils.NoContentResponse(c)
}

func (h *ProductHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidID), nil)
		return 0, false
	}
	return id, true
}

// bindJSON decodes exactly one JSON value from the body. Anything after it,
// even whitespace-separated valid JSON, is rejected.
func bindJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return errors.New("request body is empty")
	}

	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func (h *ProductHandler) storeFault(c *gin.Context, op string, err error) {
	h.logger(c).WithError(err).WithField("operation", op).Error("Product store operation failed")
	utils.InternalErrorResponse(c)
}

func (h *ProductHandler) logger(c *gin.Context) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"request_id": utils.GetRequestIDFromContext(c),
		"path":       c.Request.URL.Path,
	})
}
