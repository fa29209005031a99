package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/gin_interface/dto"
)

type AudioController interface {
	ProcessAudio(c *gin.Context)
	GetAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine, uploadMiddlewares ...gin.HandlerFunc)
}

type audioController struct {
	logger        outbound.LoggerPort
	audioPipeline inbound.AudioPipelinePort
	artifactStore outbound.ArtifactStorePort
}

func NewAudioController(
	logger outbound.LoggerPort,
	audioPipeline inbound.AudioPipelinePort,
	artifactStore outbound.ArtifactStorePort,
) AudioController {
	return &audioController{
		logger:        logger,
		audioPipeline: audioPipeline,
		artifactStore: artifactStore,
	}
}

func (a *audioController) ProcessAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "audio_file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		a.logger.Error(err, "failed to open uploaded file")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "unreadable upload"})
		return
	}
	defer file.Close()

	a.logger.InfoWithFields("Received audio processing request", map[string]interface{}{
		"file": fileHeader.Filename,
	})

	result, err := a.audioPipeline.Process(c, inbound.ProcessAudioParams{
		FileName: fileHeader.Filename,
		Content:  file,
	})
	if errors.Is(err, domain.ErrUnsupportedAudioFormat) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Detail: "Invalid file format. Only WAV, MP3, OGG are supported.",
		})
		return
	}
	if err != nil {
		kind := domain.KindOf(err)
		a.logger.ErrorWithFields(err, "Audio processing failed", map[string]interface{}{
			"file":       fileHeader.Filename,
			"error_kind": kind,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail:    err.Error(),
			ErrorKind: string(kind),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProcessAudioResponse{
		TranscribedText: result.Transcript,
		LlmReply:        result.Reply,
		ReplyAudioPath:  "/audio/" + result.AudioName,
		ReplyAudioURL:   result.AudioURL,
	})
}

func (a *audioController) GetAudio(c *gin.Context) {
	name := c.Param("filename")
	if filepath.Base(name) != name {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Audio file not found."})
		return
	}

	reader, err := a.artifactStore.Open(c, name)
	if errors.Is(err, domain.ErrArtifactNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Audio file not found."})
		return
	}
	if err != nil {
		a.logger.ErrorWithFields(err, "failed to open audio artifact", map[string]interface{}{
			"name": name,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "failed to read audio"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, domain.AudioContentType(name), reader, nil)
}

func (a *audioController) RegisterRoutes(g *gin.Engine, uploadMiddlewares ...gin.HandlerFunc) {
	upload := append(uploadMiddlewares, a.ProcessAudio)
	g.POST("/process_audio/", upload...)
	g.GET("/audio/:filename", a.GetAudio)
}
