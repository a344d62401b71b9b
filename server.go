package routepick

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubenv/routepick/selector/snap"
)

type tapRequest struct {
	Lng *float64 `json:"lng" binding:"required"`
	Lat *float64 `json:"lat" binding:"required"`
}

type alternatesRequest struct {
	Selectable *bool `json:"selectable" binding:"required"`
}

type visibleRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type routeInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Primary bool   `json:"primary"`
}

type routesResponse struct {
	Routes               []routeInfo `json:"routes"`
	Primary              int         `json:"primary"`
	Visible              bool        `json:"visible"`
	AlternatesSelectable bool        `json:"alternates_selectable"`
}

func (e *Env) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/tap", e.handleTap)
	r.GET("/routes", e.handleRoutes)
	r.GET("/routes.geojson", e.handleRoutesGeoJSON)
	r.PUT("/alternates", e.handleAlternates)
	r.PUT("/visible", e.handleVisible)
	return r
}

func (e *Env) handleTap(c *gin.Context) {
	var req tapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := snap.Point{*req.Lng, *req.Lat}
	if !p.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinate out of range"})
		return
	}

	out, err := e.selector.HandleTap(p)
	if err != nil {
		e.log("tap", "Failed to handle tap at %s: %s", p, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewTapResult(out))
}

func (e *Env) handleRoutes(c *gin.Context) {
	primary := e.line.PrimaryRouteIndex()
	resp := routesResponse{
		Routes:               make([]routeInfo, 0),
		Primary:              primary,
		Visible:              e.line.Visible(),
		AlternatesSelectable: e.selector.AlternatesSelectable(),
	}
	for i, r := range e.line.Routes() {
		resp.Routes = append(resp.Routes, routeInfo{
			ID:      r.ID(),
			Name:    r.Name,
			Primary: i == primary,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (e *Env) handleRoutesGeoJSON(c *gin.Context) {
	c.JSON(http.StatusOK, e.line.FeatureCollection())
}

func (e *Env) handleAlternates(c *gin.Context) {
	var req alternatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.selector.SetAlternatesSelectable(*req.Selectable)
	c.Status(http.StatusNoContent)
}

func (e *Env) handleVisible(c *gin.Context) {
	var req visibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.line.SetVisible(*req.Visible)
	c.Status(http.StatusNoContent)
}
