package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/charmbracelet/huh"
)

// activityDraft collects the fields of the create-activity form.
type activityDraft struct {
	Name        string
	Points      string
	Viz         string
	Description string
}

func newActivityForm(d *activityDraft) *huh.Form {
	if d.Viz == "" {
		d.Viz = string(domain.VizPie)
	}
	options := []huh.Option[string]{
		huh.NewOption("Heatmap", string(domain.VizHeatmap)),
		huh.NewOption("Bar chart", string(domain.VizBar)),
		huh.NewOption("Progress", string(domain.VizProgress)),
		huh.NewOption("Pie", string(domain.VizPie)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Placeholder("yoga").
				Value(&d.Name).
				Validate(validateActivityName),
			huh.NewInput().
				Title("Points per unit (optional)").
				Description("Leave empty to use the default scoring").
				Value(&d.Points).
				Validate(validatePoints),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Visualization").
				Options(options...).
				Value(&d.Viz),
			huh.NewInput().
				Title("Description (optional)").
				Value(&d.Description),
		),
	).WithTheme(streakmindHuhTheme()).WithShowHelp(false)
}

func validateActivityName(s string) error {
	if domain.NormalizeActivityName(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validatePoints(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("must be a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// request converts the draft into a create request.
func (d activityDraft) request() (contract.CreateActivityRequest, error) {
	if err := validateActivityName(d.Name); err != nil {
		return contract.CreateActivityRequest{}, err
	}
	if err := validatePoints(d.Points); err != nil {
		return contract.CreateActivityRequest{}, err
	}
	req := contract.CreateActivityRequest{
		Name:              d.Name,
		VisualizationType: domain.VisualizationType(d.Viz),
		Description:       strings.TrimSpace(d.Description),
	}
	if p := strings.TrimSpace(d.Points); p != "" {
		v, _ := strconv.ParseFloat(p, 64)
		req.CustomPoints = &v
	}
	return req, nil
}
