package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var to, from string

	cmd := &cobra.Command{
		Use:   "placecall",
		Short: "Place an outbound feedback call",
		Long: `Place an outbound call that connects to the feedback agent.

The call is answered by PUBLIC_URL/twilio_voice and reports its final status
to PUBLIC_URL/twilio_status. Numbers default to TWILIO_PHONE_NUMBER and
YOUR_PHONE_NUMBER.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			twilioConfig, err := config.GetTwilioConfig()
			if err != nil {
				return err
			}
			req, err := buildPlaceCallRequest(twilioConfig, to, from)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			placer := adapters.NewTwilioCallPlacer(twilioConfig, adapters.NewZerologWrapperWithOptions("info", "console"))
			callSid, err := placer.Place(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), callSid)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "number to call (default YOUR_PHONE_NUMBER)")
	cmd.Flags().StringVar(&from, "from", "", "caller id (default TWILIO_PHONE_NUMBER)")

	return cmd
}

func buildPlaceCallRequest(twilioConfig *config.TwilioConfig, to string, from string) (outbound.PlaceCallRequest, error) {
	if to == "" || from == "" {
		outboundConfig, err := config.GetOutboundCallConfig()
		if err != nil {
			return outbound.PlaceCallRequest{}, err
		}
		if to == "" {
			to = outboundConfig.To
		}
		if from == "" {
			from = outboundConfig.From
		}
	}

	return outbound.PlaceCallRequest{
		To:                to,
		From:              from,
		WebhookURL:        twilioConfig.PublicURL + "/twilio_voice",
		StatusCallbackURL: twilioConfig.PublicURL + "/twilio_status",
	}, nil
}
