package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/sjson"

	"github.com/aatuh/setcookie"
	"github.com/aatuh/setcookie/internal/config"
	"github.com/aatuh/setcookie/rawattrs"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type encodeFlags struct {
	name, value, domain, path string
	sameSite, comment         string
	secure, httpOnly          bool
	maxAge                    int
}

func newEncodeCmd(v *viper.Viper) *cobra.Command {
	var f encodeFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print Set-Cookie values for the given cookies",
		Long: `Encode prints one Set-Cookie value per cookie. A cookie given with --name
is printed first, followed by every entry of the config "cookies" list.
Max-Age is emitted only when --max-age is passed, so --max-age=0 is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Ctx(cmd.Context())

			var all []setcookie.Attributes
			if cmd.Flags().Changed("name") {
				a, err := f.attributes(cmd)
				if err != nil {
					return err
				}
				all = append(all, a)
			}

			entries, err := config.Cookies(v)
			if err != nil {
				return err
			}
			for i, m := range entries {
				a, err := rawattrs.FromMap(m)
				if err != nil {
					return fmt.Errorf("cookies[%d]: %w", i, err)
				}
				all = append(all, a)
			}
			if len(all) == 0 {
				return errors.New("nothing to encode: pass --name or configure cookies")
			}

			format := strings.ToLower(v.GetString("output.format"))
			for _, a := range all {
				value, err := setcookie.Encode(a)
				if err != nil {
					return err
				}
				if err := writeHeader(cmd.OutOrStdout(), format, a.Name(), value); err != nil {
					return err
				}
			}
			log.Info().Int("count", len(all)).Str("format", format).Msg("cookies encoded")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "cookie name")
	fl.StringVar(&f.value, "value", "", "cookie value")
	fl.StringVar(&f.domain, "domain", "", "Domain attribute")
	fl.StringVar(&f.path, "path", "", "Path attribute")
	fl.StringVar(&f.sameSite, "same-site", "", "SameSite attribute: lax, none or strict")
	fl.BoolVar(&f.secure, "secure", false, "emit the Secure flag")
	fl.BoolVar(&f.httpOnly, "http-only", false, "emit the HttpOnly flag")
	fl.IntVar(&f.maxAge, "max-age", 0, "Max-Age in seconds; negative values are passed through")
	fl.StringVar(&f.comment, "comment", "", "Comment attribute")
	fl.String("format", formatText, "output format: text or json")
	cobra.CheckErr(v.BindPFlag("output.format", fl.Lookup("format")))

	return cmd
}

func (f encodeFlags) attributes(cmd *cobra.Command) (setcookie.Attributes, error) {
	a, err := setcookie.NewAttributes(f.name, f.value)
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a, err = a.WithRawSameSite(f.sameSite)
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a = a.
		WithDomain(f.domain).
		WithPath(f.path).
		WithSecure(f.secure).
		WithHTTPOnly(f.httpOnly).
		WithComment(f.comment)
	if cmd.Flags().Changed("max-age") {
		a = a.WithMaxAge(f.maxAge)
	}
	return a, nil
}

func writeHeader(w io.Writer, format, name, value string) error {
	switch format {
	case formatText, "":
		_, err := fmt.Fprintln(w, value)
		return err
	case formatJSON:
		doc, err := sjson.Set("", "header", setcookie.HeaderSetCookie)
		if err != nil {
			return err
		}
		if doc, err = sjson.Set(doc, "name", name); err != nil {
			return err
		}
		if doc, err = sjson.Set(doc, "value", value); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
