package handler

import (
	"net/http"

	"campushub/internal/model"
	"campushub/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler exposes the portal REST API over the store.
type Handler struct {
	store *store.Store
}

// New creates a handler bound to the given store.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Register mounts all /api routes on the router.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/healthz", h.Healthz)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)

		api.GET("/notices", h.ListNotices)
		api.GET("/notices/:id", h.GetNotice)
		api.POST("/notices", h.CreateNotice)

		api.GET("/complaints", h.ListComplaints)
		api.GET("/complaints/:id", h.GetComplaint)
		api.POST("/complaints", h.CreateComplaint)
		api.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)

		api.GET("/feedback", h.ListFeedback)
		api.POST("/feedback", h.CreateFeedback)

		api.GET("/clubs", h.ListClubs)
		api.GET("/clubs/:id", h.GetClub)

		api.GET("/projects", h.ListProjects)
		api.GET("/projects/club/:clubId", h.ProjectsByClub)

		api.GET("/timetable", h.ListClasses)
		api.GET("/timetable/:day", h.ClassesByDay)

		api.GET("/attendance", h.ListAttendance)
	}
}

// ---------- Health ----------

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---------- Events ----------

func (h *Handler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListEvents())
}

func (h *Handler) GetEvent(c *gin.Context) {
	event := h.store.GetEvent(c.Param("id"))
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req model.CreateEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event data"})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateEvent(req))
}

// ---------- Notices ----------

func (h *Handler) ListNotices(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListNotices())
}

func (h *Handler) GetNotice(c *gin.Context) {
	notice := h.store.GetNotice(c.Param("id"))
	if notice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *Handler) CreateNotice(c *gin.Context) {
	var req model.CreateNotice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice data"})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateNotice(req))
}

// ---------- Complaints ----------

func (h *Handler) ListComplaints(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListComplaints())
}

func (h *Handler) GetComplaint(c *gin.Context) {
	complaint := h.store.GetComplaint(c.Param("id"))
	if complaint == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

func (h *Handler) CreateComplaint(c *gin.Context) {
	var req model.CreateComplaint
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint data"})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateComplaint(req))
}

// UpdateComplaintStatus requires a status field in the body but deliberately
// accepts any value for it; the known set lives in the model constants.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	complaint := h.store.UpdateComplaintStatus(c.Param("id"), req.Status)
	if complaint == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ---------- Feedback ----------

func (h *Handler) ListFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListFeedback())
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var req model.CreateFeedback
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback data"})
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateFeedback(req))
}

// ---------- Clubs ----------

func (h *Handler) ListClubs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClubs())
}

func (h *Handler) GetClub(c *gin.Context) {
	club := h.store.GetClub(c.Param("id"))
	if club == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		return
	}
	c.JSON(http.StatusOK, club)
}

// ---------- Projects ----------

func (h *Handler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListProjects())
}

func (h *Handler) ProjectsByClub(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ProjectsByClub(c.Param("clubId")))
}

// ---------- Timetable ----------

func (h *Handler) ListClasses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClasses())
}

func (h *Handler) ClassesByDay(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ClassesByDay(c.Param("day")))
}

// ---------- Attendance ----------

func (h *Handler) ListAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAttendance())
}
