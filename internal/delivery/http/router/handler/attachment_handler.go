package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttachmentHandler serves the numbered file slots shared by machines and
// work logs. Routes bind the owner kind at registration time.
type AttachmentHandler struct {
	uc     usecase.AttachmentUsecase
	logger *slog.Logger
}

// NewAttachmentHandler is the constructor for AttachmentHandler, injected by Fx.
func NewAttachmentHandler(uc usecase.AttachmentUsecase, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{uc: uc, logger: logger}
}

// Upload returns a handler that stores the multipart "file" field into the
// slot named by the category and index path params. Index 0 clears the
// category instead of storing.
func (h *AttachmentHandler) Upload(kind usecase.AttachmentOwnerKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := pathID(c, "id")
		if err != nil {
			return err
		}

		index, err := slotIndex(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			if index != 0 {
				return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("multipart field \"file\" is required"))
			}
			// Clearing a category carries no payload.
			fileHeader = nil
		}

		var src io.ReadCloser
		if fileHeader != nil {
			src, err = fileHeader.Open()
			if err != nil {
				return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unable to read uploaded file"))
			}
			defer src.Close()
		}

		counters, err := h.uc.Upload(c.Request().Context(), kind, ownerID, c.Param("category"), index, src)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, counters, "File saved")
	}
}

// Download returns a handler that streams the stored slot file back.
func (h *AttachmentHandler) Download(kind usecase.AttachmentOwnerKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := pathID(c, "id")
		if err != nil {
			return err
		}

		index, err := slotIndex(c)
		if err != nil {
			return err
		}

		rc, err := h.uc.Download(c.Request().Context(), kind, ownerID, c.Param("category"), index)
		if err != nil {
			return errors.WithStack(err)
		}
		defer rc.Close()

		return c.Stream(http.StatusOK, echo.MIMEOctetStream, rc)
	}
}

func slotIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("slot index must be a non-negative integer"))
	}

	return index, nil
}
