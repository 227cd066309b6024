package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/andyle182810/easybill/easybill"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/spf13/cobra"
)

type paramFlags struct {
	inline    string
	file      string
	requestID string
	timeout   time.Duration
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.inline, "params", "p", "", "operation parameters as JSON object")
	cmd.Flags().StringVarP(&f.file, "params-file", "f", "", "read parameters from file, - for stdin")
	cmd.MarkFlagsMutuallyExclusive("params", "params-file")
	cmd.Flags().StringVar(&f.requestID, "request-id", "", "X-Request-ID to send instead of a random one")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "bound the call including rate limit waits, 0 for none")
}

func (f *paramFlags) requestOptions() []httpclient.RequestOption {
	var opts []httpclient.RequestOption

	if f.requestID != "" {
		opts = append(opts, httpclient.WithRequestID(f.requestID))
	}

	if f.timeout > 0 {
		opts = append(opts, httpclient.WithRequestTimeout(f.timeout))
	}

	return opts
}

func (f *paramFlags) read(stdin io.Reader) ([]byte, error) {
	switch {
	case f.inline != "":
		return []byte(f.inline), nil
	case f.file == "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read params from stdin: %w", err)
		}

		return raw, nil
	case f.file != "":
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}

		return raw, nil
	default:
		return nil, nil
	}
}

// decodeParams fills a fresh parameter object of op. Unknown fields are
// rejected so that typos do not silently drop a value.
func decodeParams(op easybill.Operation, raw []byte) (easybill.Params, error) {
	params := op.NewParams()

	if len(bytes.TrimSpace(raw)) == 0 {
		return params, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(params); err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %w", easybill.ErrInvalidParams, op.Resource, op.Name, err)
	}

	return params, nil
}

func (a *app) operationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List every supported operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			_, _ = fmt.Fprintln(w, "RESOURCE\tOPERATION\tACTION")
			for _, op := range easybill.Operations() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", op.Resource, op.Name, op.Action)
			}

			return w.Flush()
		},
	}
}

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the configured API key is accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAPIKey(cmd.Context()); err != nil {
				return err
			}

			if err := a.client.Verify(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key accepted")

			return nil
		},
	}
}

func (a *app) resourceCommand(resource string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   resource,
		Short: "Operations on " + resource,
		Args:  cobra.NoArgs,
	}

	for _, op := range easybill.Operations() {
		if op.Resource == resource {
			cmd.AddCommand(a.operationCommand(op))
		}
	}

	return cmd
}

func (a *app) operationCommand(op easybill.Operation) *cobra.Command {
	var (
		flags paramFlags
		all   bool
	)

	cmd := &cobra.Command{
		Use:   op.Name,
		Short: op.Action,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := flags.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			params, err := decodeParams(op, raw)
			if err != nil {
				return err
			}

			if err := a.requireAPIKey(cmd.Context()); err != nil {
				return err
			}

			a.logger.Debug().Str("resource", op.Resource).Str("operation", op.Name).Msg("Running operation")

			if all {
				return a.runAll(cmd, op, params, flags.requestOptions()...)
			}

			response, err := a.client.Run(cmd.Context(), params, flags.requestOptions()...)
			if err != nil {
				return err
			}

			return writeResponse(cmd.OutOrStdout(), response)
		},
	}

	flags.register(cmd)

	if _, paged := op.NewParams().(easybill.PagedParams); paged {
		cmd.Flags().BoolVar(&all, "all", false, "fetch every page and print the combined items")
	}

	return cmd
}

func (a *app) runAll(
	cmd *cobra.Command,
	op easybill.Operation,
	params easybill.Params,
	opts ...httpclient.RequestOption,
) error {
	paged, ok := params.(easybill.PagedParams)
	if !ok {
		return fmt.Errorf("%w: %s/%s is not a list operation", easybill.ErrUnknownOperation, op.Resource, op.Name)
	}

	items, err := easybill.ListAll[json.RawMessage](cmd.Context(), a.client, paged, opts...)
	if err != nil {
		return err
	}

	if items == nil {
		items = []json.RawMessage{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	return writeResponse(cmd.OutOrStdout(), raw)
}

// writeResponse pretty prints JSON bodies and passes anything else, such as
// PDF or JPEG downloads, through unchanged.
func writeResponse(w io.Writer, body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if !json.Valid(body) {
		_, err := w.Write(body)

		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	out.WriteString("\n")

	_, err := io.Copy(w, &out)

	return err
}
