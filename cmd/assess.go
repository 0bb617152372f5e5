package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/khrees2412/careerpivot/internal/assessment"
	"github.com/khrees2412/careerpivot/internal/builder"
	"github.com/khrees2412/careerpivot/internal/collector"
	"github.com/khrees2412/careerpivot/internal/plan"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the career pivot assessment in the terminal",
	Long:  "Walk through every question, submit the assessment and print your personalized AI career plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("AI Career Pivot Assessment for Engineers"))
		fmt.Fprintln(out, "Press Enter to accept the [default]. Fields marked * are required.")

		form, err := collector.NewWizard(a.Collector, cmd.InOrStdin(), out).Run()
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}

		res, err := a.Service.Submit(cmd.Context(), form)
		var verr *builder.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(out, warnStyle.Render("Please fill in all required fields (marked with *)."))
			return err
		}
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Status  string `json:"status"`
				Message string `json:"message"`
				*assessment.Result
			}{res.Status(), res.Message(), res})
		}

		renderResult(out, res)
		return nil
	},
}

func renderResult(w io.Writer, res *assessment.Result) {
	if res.Status() == assessment.StatusSuccess {
		fmt.Fprintln(w, successStyle.Render(res.Message()))
	} else {
		fmt.Fprintln(w, warnStyle.Render(res.Message()))
	}
	if !res.Persisted.OK {
		fmt.Fprintf(os.Stderr, "Warning: assessment was not archived: %s\n", res.Persisted.Reason())
	}

	p := res.Plan
	fmt.Fprintln(w, titleStyle.Render("Your Personalized AI Career Transformation Plan"))

	if p.Path != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Your Path:"), valueStyle.Render(p.Path.Name))
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Profile Match:"), p.Path.Description)
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Your Goal:"), p.Path.Goal)
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Recommended Timeline:"), p.Path.Timeline)
	}

	if p.Timeline != nil {
		fmt.Fprintf(w, "\n%s\n", labelStyle.Render(p.Timeline.Name+" Plan: "+p.Timeline.Subtitle))
		fmt.Fprintf(w, "  Focus: %s\n", p.Timeline.Focus)
		for _, step := range p.Timeline.Structure {
			fmt.Fprintf(w, "  • %s\n", step)
		}
	}

	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Immediate Next Steps"))
	for _, step := range p.NextSteps {
		fmt.Fprintf(w, "  • %s\n", step)
	}

	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Your Personalized Learning Content Mix"))
	renderChannel(w, "Audio", p.Content.Audio)
	renderChannel(w, "Video", p.Content.Video)
	renderChannel(w, "Text", p.Content.Text)

	if p.Py4AI != nil {
		fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Py4AI - Perfect Match for You!"))
		for _, r := range p.Py4AI.Reasons {
			fmt.Fprintf(w, "  • %s\n", r)
		}
		fmt.Fprintf(w, "  Next Step: %s\n", p.Py4AI.NextStep)
	}

	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Strategic Networking Plan"))
	fmt.Fprintln(w, "  LinkedIn Strategy:")
	for _, item := range p.Networking.LinkedIn {
		fmt.Fprintf(w, "    • %s\n", item)
	}
	fmt.Fprintln(w, "  Community Engagement:")
	for _, item := range p.Networking.Community {
		fmt.Fprintf(w, "    • %s\n", item)
	}

	if p.ConcernAdvice != nil {
		fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Addressing Your Main Concern"))
		fmt.Fprintf(w, "  Reality Check: %s\n", p.ConcernAdvice.RealityCheck)
		fmt.Fprintf(w, "  Action: %s\n", p.ConcernAdvice.Action)
	}
}

func renderChannel(w io.Writer, name string, ch plan.Channel) {
	fmt.Fprintf(w, "  %s\n", valueStyle.Render(name+" Content"))
	if !ch.Selected {
		fmt.Fprintf(w, "    %s\n", noteStyle.Render(ch.Note))
		return
	}
	for _, item := range ch.Items {
		fmt.Fprintf(w, "    • %s\n", item)
	}
}

func init() {
	rootCmd.AddCommand(assessCmd)
	assessCmd.Flags().Bool("json", false, "Print the result as JSON instead of the formatted plan")
}
