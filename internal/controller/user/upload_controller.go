package user

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/controller"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
)

// maxPartSize bounds how much of one part is read; anything longer is over
// every policy ceiling anyway.
const maxPartSize = 10*upload.MB + 1

type UploadController struct {
	uploadService service.UploadService
}

func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

func readPart(fh *multipart.FileHeader) (service.FileInput, error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileInput{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, int64(maxPartSize)))
	if err != nil {
		return service.FileInput{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return service.FileInput{Name: fh.Filename, Data: data}, nil
}

// UploadMarksheet godoc
// @Summary Upload a qualification or semester marksheet
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security TokenAuth
// @Param file formData file true "Marksheet (PDF, JPG or PNG; PDF only for Semester Marks)"
// @Param qualification_type formData string true "Course name, or 'Semester Marks'"
// @Param email formData string false "Applicant email"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or rejected file"
// @Failure 401 {object} dto.ErrorResponse
// @Router /upload-marksheet/ [post]
func (c *UploadController) UploadMarksheet(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "No file provided"})
		return
	}
	in, err := readPart(fh)
	if err != nil {
		log.Warn().Err(err).Msg("UploadMarksheet: unreadable part")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Could not read the uploaded file"})
		return
	}
	url, err := c.uploadService.UploadMarksheet(ctx.Request.Context(), controller.UserID(ctx), ctx.PostForm("qualification_type"), in)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to upload marksheet")
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{Status: dto.StatusSuccess, FileURL: url})
}

// UploadDocuments godoc
// @Summary Upload the documents page
// @Description Every field is optional but at least one file is required.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security TokenAuth
// @Param photo formData file false "Photo (JPEG, 5MB)"
// @Param signature formData file false "Signature (JPEG, 5MB)"
// @Param community_certificate formData file false "Community certificate (JPEG 5MB or PDF 10MB)"
// @Param aadhar_card formData file false "Aadhaar card (JPEG 5MB or PDF 10MB)"
// @Param transfer_certificate formData file false "Transfer certificate (JPEG 5MB or PDF 10MB)"
// @Success 200 {object} dto.DocumentsUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or rejected files"
// @Failure 401 {object} dto.ErrorResponse
// @Router /upload-documents/ [post]
func (c *UploadController) UploadDocuments(ctx *gin.Context) {
	files := map[string]service.FileInput{}
	if form, err := ctx.MultipartForm(); err == nil {
		for _, field := range upload.DocumentTargets {
			parts := form.File[field]
			if len(parts) == 0 {
				continue
			}
			in, err := readPart(parts[0])
			if err != nil {
				log.Warn().Err(err).Str("field", field).Msg("UploadDocuments: unreadable part")
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Could not read " + field})
				return
			}
			files[field] = in
		}
	}
	urls, err := c.uploadService.UploadDocuments(ctx.Request.Context(), controller.UserID(ctx), files)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to upload documents")
		return
	}
	ctx.JSON(http.StatusOK, dto.DocumentsUploadResponse{Status: dto.StatusSuccess, FileURLs: urls})
}
