package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/gin_interface/dto"
	"github.com/riyadominic123/ai-call/infrastructure/twiml"
)

// terminalCallStatuses are the CallStatus values after which Twilio sends no
// further webhooks for the call.
var terminalCallStatuses = map[string]struct{}{
	"completed": {},
	"busy":      {},
	"failed":    {},
	"no-answer": {},
	"canceled":  {},
}

type VoiceControllerOptions struct {
	PublicURL       string
	IntroAudioURL   string
	IntroText       string
	ApologyText     string
	ApologyAudioURL string
	PollPause       time.Duration
	MaxPolls        int
	RecordMaxLength time.Duration
	RecordTimeout   time.Duration
}

type VoiceController interface {
	HandleVoice(c *gin.Context)
	HandleResult(c *gin.Context)
	HandleStatus(c *gin.Context)
	RegisterRoutes(g *gin.Engine, middlewares ...gin.HandlerFunc)
}

type voiceController struct {
	logger      outbound.LoggerPort
	runner      inbound.PipelineRunnerPort
	results     outbound.ResultStorePort
	replyLedger outbound.ReplyLedgerPort
	pollCounter outbound.PollCounterPort
	options     VoiceControllerOptions
}

func NewVoiceController(
	logger outbound.LoggerPort,
	runner inbound.PipelineRunnerPort,
	results outbound.ResultStorePort,
	replyLedger outbound.ReplyLedgerPort,
	pollCounter outbound.PollCounterPort,
	options VoiceControllerOptions,
) VoiceController {
	return &voiceController{
		logger:      logger,
		runner:      runner,
		results:     results,
		replyLedger: replyLedger,
		pollCounter: pollCounter,
		options:     options,
	}
}

func (v *voiceController) HandleVoice(c *gin.Context) {
	var req dto.VoiceWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		err = c.AbortWithError(http.StatusBadRequest, err)
		if err != nil {
			v.logger.Error(err, "failed to abort with error")
		}
		return
	}
	logger := v.logger.With(map[string]interface{}{"call_sid": req.CallSid})

	if req.RecordingUrl == "" {
		logger.Info("No recording yet, starting conversation")
		v.render(c, v.awaitRecording())
		return
	}

	logger.Info("Recording received, dispatching pipeline")
	v.pollCounter.Reset(req.CallSid)
	err := v.runner.Dispatch(c, inbound.DispatchParams{
		CallID:       req.CallSid,
		RecordingURL: req.RecordingUrl,
	})
	switch {
	case errors.Is(err, domain.ErrRunnerInFlight):
		logger.Warn("Pipeline already running for call, polling the in-flight run")
	case err != nil:
		logger.Error(err, "Failed to dispatch pipeline")
		v.render(c, v.apologise())
		return
	}

	v.render(c, v.pollAgain(req.CallSid))
}

func (v *voiceController) HandleResult(c *gin.Context) {
	callID := c.Param("call_sid")
	logger := v.logger.With(map[string]interface{}{"call_sid": callID})

	// No outcome yet: keep looping until MaxPolls.
	outcome, ok := v.results.Take(callID)
	if !ok {
		polls := v.pollCounter.Increment(callID)
		if polls > v.options.MaxPolls {
			logger.WarnWithFields("Giving up on pipeline", map[string]interface{}{
				"polls": polls,
			})
			v.runner.Cancel(callID)
			v.pollCounter.Reset(callID)
			v.render(c, v.apologise())
			return
		}
		logger.Debug("Still processing")
		v.render(c, v.pollAgain(callID))
		return
	}

	v.pollCounter.Reset(callID)
	if outcome.IsDone() {
		logger.InfoWithFields("Result ready, playing reply", map[string]interface{}{
			"audio_url": outcome.AudioURL,
		})
		v.render(c, twiml.New().Play(outcome.AudioURL).Hangup())
		return
	}

	logger.WarnWithFields("Pipeline failed", map[string]interface{}{
		"error_kind": outcome.ErrorKind,
	})
	v.render(c, v.apologise())
}

// HandleStatus drops every piece of per-call state once the call is over.
func (v *voiceController) HandleStatus(c *gin.Context) {
	var req dto.StatusCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		err = c.AbortWithError(http.StatusBadRequest, err)
		if err != nil {
			v.logger.Error(err, "failed to abort with error")
		}
		return
	}

	if _, terminal := terminalCallStatuses[req.CallStatus]; terminal {
		cancelled := v.runner.Cancel(req.CallSid)
		v.results.Forget(req.CallSid)
		v.replyLedger.Forget(req.CallSid)
		v.pollCounter.Reset(req.CallSid)
		v.logger.InfoWithFields("Call ended, session released", map[string]interface{}{
			"call_sid":         req.CallSid,
			"call_status":      req.CallStatus,
			"runner_cancelled": cancelled,
		})
	}

	c.Status(http.StatusNoContent)
}

func (v *voiceController) awaitRecording() *twiml.Response {
	response := twiml.New()
	if v.options.IntroAudioURL != "" {
		response.Play(v.options.IntroAudioURL)
	} else {
		response.Say(v.options.IntroText)
	}
	return response.Record(v.options.PublicURL+"/twilio_voice", v.options.RecordMaxLength, v.options.RecordTimeout)
}

// apologise plays the prewarmed apology, or speaks it when none was synthesized.
func (v *voiceController) apologise() *twiml.Response {
	if v.options.ApologyAudioURL != "" {
		return twiml.New().Play(v.options.ApologyAudioURL)
	}
	return twiml.New().Say(v.options.ApologyText)
}

func (v *voiceController) pollAgain(callID string) *twiml.Response {
	return twiml.New().
		Pause(v.options.PollPause).
		Redirect(v.options.PublicURL + "/twilio_result/" + callID)
}

func (v *voiceController) render(c *gin.Context, response *twiml.Response) {
	body, err := response.Render()
	if err != nil {
		v.logger.Error(err, "failed to render twiml")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, twiml.ContentType, body)
}

func (v *voiceController) RegisterRoutes(g *gin.Engine, middlewares ...gin.HandlerFunc) {
	group := g.Group("/", middlewares...)
	group.POST("/twilio_voice", v.HandleVoice)
	group.POST("/twilio_result/:call_sid", v.HandleResult)
	group.POST("/twilio_status", v.HandleStatus)
}
