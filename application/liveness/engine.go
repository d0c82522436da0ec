package liveness

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"blinkgate.io/application/utils"
	fileupload "blinkgate.io/infrastructure/file_upload"
	ftypes "blinkgate.io/infrastructure/file_upload/types"
	"blinkgate.io/infrastructure/logger"
	"blinkgate.io/infrastructure/vision"
	vtypes "blinkgate.io/infrastructure/vision/types"
)

const DefaultSessionTimeout = 30 * time.Second

const (
	unavailableMessage = "Eye detection model is unavailable. Please try again later."
	TimedOutMessage    = "Liveness check timed out."
	invalidFrameMsg    = "Invalid frame received."
	internalErrorMsg   = "Internal processing error."
	verifiedMessage    = "Blink verified successfully with open and closed eye captures."
	unsureMessage      = "Blink naturally while keeping your face centered. If wearing glasses, remove them for better detection."
)

// Engine is the liveness verification orchestrator. One frame at a
// time runs through it under the session store's lock: serializing
// unrelated users is an accepted trade-off at tens of concurrent
// sessions. Sharding the store by key hash is the scale-up path.
type Engine struct {
	store   *SessionStore
	vision  vtypes.VisionServiceType
	arbiter *CaptureArbiter
	timeout time.Duration
	initErr error

	now func() time.Time
}

func NewEngine(visionService vtypes.VisionServiceType, sink ftypes.FileUploaderType, timeout time.Duration, initErr error) *Engine {
	return &Engine{
		store:   NewSessionStore(),
		vision:  visionService,
		arbiter: NewCaptureArbiter(sink),
		timeout: timeout,
		initErr: initErr,
		now:     time.Now,
	}
}

var VerificationEngine *Engine

// InitialiseEngine wires the engine to the vision service and
// artifact sink started by the startup sequence.
func InitialiseEngine() {
	timeout := DefaultSessionTimeout
	if raw := os.Getenv("LIVENESS_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			logger.Warning("invalid LIVENESS_TIMEOUT_SECONDS. falling back to default", logger.LoggerOptions{
				Key:  "value",
				Data: raw,
			})
		} else {
			timeout = time.Duration(seconds) * time.Second
		}
	}
	VerificationEngine = NewEngine(vision.VisionService, fileupload.FileUploader, timeout, vision.InitErr)
	logger.Info(fmt.Sprintf("liveness engine initialised with %s session timeout", timeout))
}

// ProcessFrame ingests one analyzed camera frame for the attempt
// identified by (identity, token) and returns the running verdict.
// Collaborator failures never propagate: they are converted to a
// pending or failed verdict here.
func (engine *Engine) ProcessFrame(identity string, token string, imageData string) Verdict {
	if engine.initErr != nil || engine.vision == nil {
		return failedVerdict(unavailableMessage, nil)
	}

	engine.store.mu.Lock()
	defer engine.store.mu.Unlock()

	now := engine.now()
	key := SessionKey(identity, token)

	// The caller's own expired session fails this frame explicitly.
	// Everyone else's just gets swept. The next frame for this key
	// starts a fresh attempt.
	if stale := engine.store.get(key); stale != nil && stale.HasExpired(now, engine.timeout) {
		engine.store.remove(key)
		engine.store.sweepExpired(now, engine.timeout)
		return failedVerdict(TimedOutMessage, stale)
	}
	engine.store.sweepExpired(now, engine.timeout)

	session := engine.store.getOrCreate(key, now)

	frame, err := utils.DecodeBase64Image(imageData)
	if err != nil {
		return pendingVerdict(invalidFrameMsg, session)
	}

	analysis, err := engine.vision.Classify(&imageData)
	if err != nil {
		logger.Error("frame classification failed. discarding session", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		engine.store.remove(key)
		return failedVerdict(internalErrorMsg, session)
	}

	if reason := AdmitFrame(analysis); reason != RejectNone {
		verdict := pendingVerdict(reason.Message(), session)
		if reason == RejectTooBlurry {
			verdict.EyeAspectRatio = analysis.EyeAspectRatio
		}
		return verdict
	}

	if analysis.EyeState == vtypes.EyeStateOpen || analysis.EyeState == vtypes.EyeStateClosed {
		score := QualityScore(analysis.Sharpness, analysis.FaceBox.CenterX(), analysis.FrameWidth)
		if err := engine.arbitrate(session, analysis.EyeState, score, frame, identity); err != nil {
			logger.Error("capture arbitration failed. discarding session", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			}, logger.LoggerOptions{
				Key:  "key",
				Data: key,
			})
			engine.store.remove(key)
			return failedVerdict(internalErrorMsg, session)
		}
	}

	if session.Complete() {
		engine.store.remove(key)
		verdict := Verdict{
			State:   StateVerified,
			Message: verifiedMessage,
		}
		applySessionStatus(&verdict, session)
		verdict.EyeAspectRatio = analysis.EyeAspectRatio
		return verdict
	}

	var message string
	if analysis.EyeState == vtypes.EyeStateUnsure {
		message = unsureMessage
	} else {
		message = fmt.Sprintf("%s %s", session.stageMessage(), session.captureMessage())
	}
	verdict := pendingVerdict(message, session)
	verdict.EyeAspectRatio = analysis.EyeAspectRatio
	return verdict
}

// arbitrate feeds an accepted OPEN or CLOSED frame through the
// capture arbiter and then the gesture state machine. A CLOSED frame
// before any OPEN captures nothing.
func (engine *Engine) arbitrate(session *LivenessSession, eyeState vtypes.EyeState, score float64, frame []byte, identity string) error {
	if eyeState == vtypes.EyeStateOpen {
		if _, err := engine.arbiter.Consider(session, eyeState, score, frame, identity); err != nil {
			return err
		}
		session.RecordEyeState(eyeState)
		return nil
	}

	// CLOSED frames are only meaningful once an open has been seen.
	if !session.SawOpenBeforeClose {
		return nil
	}
	session.RecordEyeState(eyeState)
	_, err := engine.arbiter.Consider(session, eyeState, score, frame, identity)
	return err
}

// ActiveSessions reports how many attempts are resident. Used by the
// health endpoint.
func (engine *Engine) ActiveSessions() int {
	engine.store.mu.Lock()
	defer engine.store.mu.Unlock()
	return engine.store.size()
}

// Ready reports whether the classification backend initialised.
func (engine *Engine) Ready() bool {
	return engine.initErr == nil && engine.vision != nil
}
