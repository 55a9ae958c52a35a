package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/capture"
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/device"
	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
	"github.com/revisit-app/revisit/internal/notifier"
)

// CaptureCmd saves one moment from the command line, running the same flow
// and entitlement gate as the TUI capture screen.
type CaptureCmd struct {
	Photo    string   `arg:"" help:"Path to the photo to capture (jpg/png)." type:"existingfile"`
	Rating   string   `required:"" enum:"yes,neutral,no" help:"Did you like it? (yes|neutral|no)"`
	Category string   `default:"other" help:"Category id (restaurant|cafe|hotel|travel|experience|activity|other)."`
	Comment  string   `help:"Optional short comment."`
	Lat      *float64 `help:"Latitude to attach to the entry."`
	Lon      *float64 `help:"Longitude to attach to the entry."`
}

func (c *CaptureCmd) Run(ctx *Context) error {
	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	camera := device.NewFileCamera()
	camera.SetSource(c.Photo)

	var locator capture.Locator = device.DeniedLocator{}
	if c.Lat != nil && c.Lon != nil {
		locator = &device.StaticLocator{Location: &models.Location{Lat: *c.Lat, Lon: *c.Lon}}
	}

	flow := capture.New(state, camera, locator, device.NewJPEGTransformer(ctx.PhotoDir()))

	if err := flow.TakePhoto(); err != nil {
		if errors.Is(err, capture.ErrCameraPermission) {
			return fmt.Errorf("%s", state.T("capture.cameraPerm"))
		}
		return err
	}

	flow.SetRating(models.Rating(c.Rating))
	flow.SetCategory(models.CategoryID(c.Category))
	flow.SetComment(c.Comment)

	result, err := flow.Save()
	if err != nil {
		return err
	}

	maxStr := strconv.Itoa(constants.FreeMaxEntries)
	switch result.Status {
	case capture.StatusLimitBlocked:
		fmt.Println(state.T("capture.limitHardTitle") + ": " + state.Tf("capture.limitHardMsg", map[string]string{"max": maxStr}))
		return nil
	case capture.StatusLimitWarned:
		// A one-shot run has no screen session for the warning to persist in,
		// so print it and complete the save in the same invocation. The guard
		// has warned for this session now, so the retry goes through.
		fmt.Println(state.T("capture.limitWarnTitle") + ": " + state.Tf("capture.limitWarnMsg", map[string]string{"max": maxStr}))
		result, err = flow.Save()
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s: %s\n", state.T("capture.savedTitle"), state.T("capture.savedMsg"))
	fmt.Println(FormatEntryLine(result.Entry, true))

	if err := notifier.New().Notify(state.T("capture.savedMsg")); err != nil {
		logger.Debug("Desktop notification skipped", "error", err)
	}

	return nil
}
