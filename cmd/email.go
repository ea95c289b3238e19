package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailCmd = &cobra.Command{
	Use:   "email <address> [from] [to (optional)]",
	Short: "Emails a listening recap",
	Long: `Sends the stats and top rankings for the given period to the specified
address, via SendGrid. Requires sendgrid_api_key and from to be set.`,
	Args: cobra.RangeArgs(1, 3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := sendRecapEmail(args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func sendRecapEmail(to string, dateArgs []string) error {
	var body bytes.Buffer
	if err := printStats(&body, dateArgs); err != nil {
		return err
	}
	body.WriteString("\n")
	if err := printTop(&body, dateArgs); err != nil {
		return err
	}

	subject := "Your listening recap"
	text := body.String()
	html := "<pre>" + text + "</pre>"

	if viper.GetBool("dryRun") {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, text)
		return nil
	}

	key := viper.GetString("sendgrid_api_key")
	if key == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	fromEmail := mail.NewEmail("spotify-history-tools", viper.GetString("from"))
	toEmail := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(fromEmail, subject, toEmail, text, html)
	client := sendgrid.NewSendClient(key)
	_, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	return nil
}
