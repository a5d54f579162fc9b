package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdashik24x7/portfolio/internal/page"
	"github.com/mdashik24x7/portfolio/internal/skill"
)

type indexView struct {
	Page       page.Page
	Dark       bool
	Persistent bool
	Contact    bool
}

func (s *Server) index(c *gin.Context) {
	ctrl := controllerFrom(c)
	c.HTML(http.StatusOK, "index.html", indexView{
		Page:       page.Compose(s.tables, ctrl.Mode(), s.logger),
		Dark:       ctrl.Dark(),
		Persistent: ctrl.Persistent(),
		Contact:    s.mailer != nil,
	})
}

func (s *Server) currentTheme(c *gin.Context) {
	ctrl := controllerFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"theme":      ctrl.Mode().String(),
		"persistent": ctrl.Persistent(),
	})
}

// toggleTheme flips the theme and persists it in the response cookie.
// HTMX callers get a refresh instruction; plain form posts are redirected.
func (s *Server) toggleTheme(c *gin.Context) {
	ctrl := controllerFrom(c)
	mode, err := ctrl.Toggle()
	if err != nil {
		s.logger.Warn("theme not persisted", "theme", mode, "err", err)
	}

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// navigate resolves a landmark and redirects to its anchor. Unknown
// landmarks are a silent no-op.
func (s *Server) navigate(c *gin.Context) {
	p := page.Compose(s.tables, controllerFrom(c).Mode(), s.logger)
	section, ok := p.ScrollTarget(c.Param("id"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+section.Anchor())
}

func (s *Server) panel(c *gin.Context) (page.SkillPanel, bool) {
	cat, ok := s.tables.Category(c.Param("category"))
	if !ok {
		c.String(http.StatusNotFound, "unknown skill category")
		return page.SkillPanel{}, false
	}
	return page.Panel(cat, controllerFrom(c).Mode(), s.logger), true
}

// skillPanel re-renders one category fragment.
func (s *Server) skillPanel(c *gin.Context) {
	p, ok := s.panel(c)
	if !ok {
		return
	}
	name := "chart"
	if p.Grid() {
		name = "grid"
	}
	c.HTML(http.StatusOK, name, p)
}

// skillTooltip answers the hover/focus query for one bar.
func (s *Server) skillTooltip(c *gin.Context) {
	p, ok := s.panel(c)
	if !ok {
		return
	}
	tip, ok := p.Chart.Tooltip(c.Query("name"))
	if !ok {
		c.String(http.StatusNotFound, "unknown skill")
		return
	}
	c.HTML(http.StatusOK, "tooltip", tip)
}

func (s *Server) skillChartSVG(c *gin.Context) {
	p, ok := s.panel(c)
	if !ok {
		return
	}
	if p.Chart.Empty() {
		c.Status(http.StatusNoContent)
		return
	}
	if p.Grid() {
		// Export always uses the sorted bar layout.
		p.Chart = skill.Render(p.Category.Skills, p.Chart.Palette, s.logger)
	}
	c.Header("Content-Type", "image/svg+xml")
	c.Status(http.StatusOK)
	if err := WriteSVG(c.Writer, p.Category.Title, p.Chart); err != nil {
		s.logger.Error("rendering chart svg", "category", p.Category.ID, "err", err)
	}
}
