package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andyle182810/easybill/batch"
	"github.com/andyle182810/easybill/easybill"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/spf13/cobra"
)

const maxInputLine = 4 << 20

type batchFlags struct {
	input       string
	requestID   string
	size        int
	interval    time.Duration
	timeout     time.Duration
	stopOnError bool
}

// batchLine is one line of batch output.
type batchLine struct {
	Index    int             `json:"index"`
	OK       bool            `json:"ok"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    any             `json:"error,omitempty"`
}

type lineError struct {
	Message string `json:"message"`
}

func (a *app) batchCommand() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch <resource> <operation>",
		Short: "Run one operation for every JSON line of the input",
		Long: `batch reads one JSON parameter object per line and runs the operation for
each of them in order. After every --batch-size items it pauses for
--batch-interval. Each result is printed as a JSON line.`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := easybill.Lookup(args[0], args[1])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("batch-size") {
				flags.size = a.cfg.BatchSize
			}

			if !cmd.Flags().Changed("batch-interval") {
				flags.interval = a.cfg.BatchInterval
			}

			return a.runBatch(cmd, op, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "file with one JSON object per line, - for stdin")
	cmd.Flags().StringVar(&flags.requestID, "request-id", "", "X-Request-ID prefix, items send <prefix>-<index>")
	cmd.Flags().IntVar(&flags.size, "batch-size", 0, "items per batch, -1 disables pausing (default from EASYBILL_BATCH_SIZE)")
	cmd.Flags().DurationVar(&flags.interval, "batch-interval", 0, "pause between batches (default from EASYBILL_BATCH_INTERVAL)")
	cmd.Flags().DurationVar(&flags.timeout, "item-timeout", 0, "timeout for a single item including retries, 0 for none")
	cmd.Flags().BoolVar(&flags.stopOnError, "stop-on-error", false, "stop at the first failing item")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, op easybill.Operation, flags *batchFlags) error {
	in, closeInput, err := openInput(cmd.InOrStdin(), flags.input)
	if err != nil {
		return err
	}
	defer closeInput()

	items, err := readItems(in, op)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return ErrEmptyInput
	}

	if err := a.requireAPIKey(cmd.Context()); err != nil {
		return err
	}

	tasks := make([]batch.Task[json.RawMessage], 0, len(items))
	for index, params := range items {
		var reqOpts []httpclient.RequestOption
		if flags.requestID != "" {
			reqOpts = append(reqOpts, httpclient.WithRequestID(fmt.Sprintf("%s-%d", flags.requestID, index)))
		}

		tasks = append(tasks, func(ctx context.Context) (json.RawMessage, error) {
			return a.client.Run(ctx, params, reqOpts...)
		})
	}

	opts := []batch.Option{
		batch.WithName(op.Resource + "/" + op.Name),
		batch.WithSize(flags.size),
		batch.WithInterval(flags.interval),
		batch.WithExecutionTimeout(flags.timeout),
		batch.WithStopOnError(flags.stopOnError),
	}

	if a.opts.Sleeper != nil {
		opts = append(opts, batch.WithSleeper(a.opts.Sleeper))
	}

	results, runErr := batch.Run(cmd.Context(), batch.New(opts...), tasks)

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, result := range results {
		if err := enc.Encode(toBatchLine(result)); err != nil {
			return fmt.Errorf("failed to write result %d: %w", result.Index, err)
		}
	}

	if runErr != nil {
		return runErr
	}

	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%w: %d of %d items failed", ErrBatchFailed, failed, len(results))
	}

	return nil
}

func toBatchLine(result batch.Result[json.RawMessage]) batchLine {
	line := batchLine{Index: result.Index, OK: result.Err == nil, Response: nil, Error: nil}

	if result.Err != nil {
		var apiErr *httpclient.APIError
		if errors.As(result.Err, &apiErr) {
			line.Error = apiErr
		} else {
			line.Error = lineError{Message: result.Err.Error()}
		}

		return line
	}

	body := bytes.TrimSpace(result.Value)

	switch {
	case len(body) == 0:
	case json.Valid(body):
		line.Response = body
	default:
		encoded, _ := json.Marshal(string(body))
		line.Response = encoded
	}

	return line
}

func openInput(stdin io.Reader, name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open batch input: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

// readItems decodes every non blank line up front so a malformed line fails
// the run before any request is sent.
func readItems(in io.Reader, op easybill.Operation) ([]easybill.Params, error) {
	var items []easybill.Params

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), maxInputLine)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		params, err := decodeParams(op, raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		items = append(items, params)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return items, nil
}
