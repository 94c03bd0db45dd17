package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"golang-sportplans/database"
	"golang-sportplans/helpers"
	"golang-sportplans/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	store  *database.Store
	tokens *helpers.TokenManager
}

func New(store *database.Store, tokens *helpers.TokenManager) *Controller {
	return &Controller{store: store, tokens: tokens}
}

// respondError writes err with its mapped status under "error". Store
// failures are logged and reported without detail.
func respondError(c *gin.Context, err error) {
	writeError(c, "error", err)
}

// respondMessage is respondError for the user and auth routes, whose clients
// read failures from "message".
func respondMessage(c *gin.Context, err error) {
	writeError(c, "message", err)
}

func writeError(c *gin.Context, key string, err error) {
	status := helpers.StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", middleware.RequestIDFrom(c)).
			Str("route", c.FullPath()).
			Err(err).
			Msg("request failed")
		c.JSON(status, gin.H{key: "Internal server error"})
		return
	}
	c.JSON(status, gin.H{key: err.Error()})
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, helpers.Errorf(helpers.ErrValidation, "Invalid %s", name)
	}
	return id, nil
}

const (
	maxRecordPerPage = 100
	maxOffset        = math.MaxInt32
)

// pageFrom reads recordPerPage/page. Without either parameter the listing is
// not paginated. recordPerPage is capped at maxRecordPerPage; a page whose
// offset would pass maxOffset is rejected.
func pageFrom(c *gin.Context) (database.Page, error) {
	if c.Query("recordPerPage") == "" && c.Query("page") == "" {
		return database.Page{}, nil
	}

	recordPerPage, err := strconv.Atoi(c.Query("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}
	recordPerPage = min(recordPerPage, maxRecordPerPage)

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page-1 > maxOffset/recordPerPage {
		return database.Page{}, helpers.Errorf(helpers.ErrValidation, "Invalid page")
	}

	return database.Page{Limit: recordPerPage, Offset: (page - 1) * recordPerPage}, nil
}

func identity(c *gin.Context) helpers.Identity {
	who, _ := middleware.CurrentIdentity(c)
	return who
}

// guarded authorizes who against the owner of the resource, then runs the
// conditional write. If the write matched nothing, the chain changed after
// the check and is resolved again to report why.
func (ctl *Controller) guarded(ctx context.Context, who helpers.Identity, kind database.ResourceKind, id int64, write func() error) error {
	if err := ctl.authorize(ctx, who, kind, id); err != nil {
		return err
	}

	err := write()
	if !errors.Is(err, database.ErrNotApplied) {
		return err
	}

	if err := ctl.authorize(ctx, who, kind, id); err != nil {
		return err
	}
	return helpers.Errorf(helpers.ErrNotFound, "%s not found", kind)
}

func (ctl *Controller) authorize(ctx context.Context, who helpers.Identity, kind database.ResourceKind, id int64) error {
	ownerID, err := ctl.store.ResolveOwner(ctx, kind, id)
	if err != nil {
		return err
	}
	return helpers.Authorize(who, ownerID)
}
