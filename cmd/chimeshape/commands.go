package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	chimemessaging "github.com/DrewBradfordXYZ/chimemessaging-go"
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

type app struct {
	cfg *config
	out io.Writer
	in  io.Reader
	log *core.Logger
}

func newRootCmd(cfg *config, out io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out, in: os.Stdin, log: core.NewNopLogger()}

	root := &cobra.Command{
		Use:           "chimeshape",
		Short:         "Inspect and validate Chime SDK Messaging shapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.check(); err != nil {
				return err
			}
			if a.cfg.NoColor {
				color.NoColor = true
			}
			a.log = core.NewLogger(a.cfg.Debug)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	root.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	root.AddCommand(
		a.operationsCmd(),
		a.enumsCmd(),
		a.parseEnumCmd(),
		a.validateCmd(),
		a.describeCmd(),
	)
	return root
}

type operationInfo struct {
	Name        string `json:"name" yaml:"name"`
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	StaticQuery string `json:"staticQuery,omitempty" yaml:"staticQuery,omitempty"`
	SuccessCode int    `json:"successCode" yaml:"successCode"`
	Paginated   bool   `json:"paginated" yaml:"paginated"`
}

func newOperationInfo(op chimemessaging.Operation) operationInfo {
	return operationInfo{
		Name:        op.Name,
		Method:      op.Method,
		Path:        op.Path,
		StaticQuery: op.StaticQuery,
		SuccessCode: op.SuccessCode,
		Paginated:   op.Paginated,
	}
}

func (a *app) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List every operation and its HTTP binding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := chimemessaging.Operations()
			infos := make([]operationInfo, len(ops))
			for i, op := range ops {
				infos[i] = newOperationInfo(op)
			}
			if a.cfg.Format != formatText {
				return a.encode(infos)
			}

			rows := make([][]string, len(infos))
			for i, op := range infos {
				path := op.Path
				if op.StaticQuery != "" {
					path += "?" + op.StaticQuery
				}
				rows[i] = []string{op.Name, op.Method, path, strconv.Itoa(op.SuccessCode), strconv.FormatBool(op.Paginated)}
			}
			return a.printTable([]string{"NAME", "METHOD", "PATH", "STATUS", "PAGINATED"}, rows)
		},
	}
}

func (a *app) enumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums [name]",
		Short: "List enum types, or the values of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.printList(types.EnumNames())
			}
			values, ok := types.EnumValues(args[0])
			if !ok {
				return unknownName("enum", args[0], types.EnumNames())
			}
			return a.printList(values)
		},
	}
}

func (a *app) parseEnumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-enum <Enum> <value>",
		Short: "Check a value against an enum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, ok := types.EnumValues(args[0])
			if !ok {
				return unknownName("enum", args[0], types.EnumNames())
			}
			v, err := core.ParseEnum(args[0], args[1], values)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s.%s\n", color.GreenString("ok"), args[0], v)
			return nil
		},
	}
}

type validationReport struct {
	Operation string   `json:"operation" yaml:"operation"`
	Valid     bool     `json:"valid" yaml:"valid"`
	Errors    []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Request   string   `json:"request,omitempty" yaml:"request,omitempty"`
	Input     string   `json:"input" yaml:"input"`
}

var errInvalidInput = errors.New("input is not valid")

func (a *app) validateCmd() *cobra.Command {
	var fillToken bool
	cmd := &cobra.Command{
		Use:   "validate <Operation> <file|->",
		Short: "Decode an input document and validate it",
		Long: `Decode a JSON input document for an operation and check it against the
service constraints. Fields bound to the URI, query string or headers are
read from the same document under their field names.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := chimemessaging.LookupOperation(args[0])
			if !ok {
				return unknownName("operation", args[0], chimemessaging.OperationNames())
			}
			data, err := a.readInput(args[1])
			if err != nil {
				return err
			}

			in := op.NewInput()
			if err := decodeInput(data, in); err != nil {
				return fmt.Errorf("decoding %s input: %w", op.Name, err)
			}
			if idem, ok := in.(chimemessaging.IdempotentInput); ok && fillToken {
				if chimemessaging.FillClientRequestToken(idem) {
					a.log.Debug("generated idempotency token for %s", op.Name)
				}
			}

			report := validationReport{Operation: op.Name, Input: in.String()}
			verr := in.Validate()
			a.log.Validation(op.Name+"Input", verr)

			var params *core.InvalidParamsError
			switch {
			case verr == nil:
				report.Valid = true
				if uri, err := chimemessaging.RequestURI(op, in); err == nil {
					report.Request = op.Method + " " + uri
				}
			case errors.As(verr, &params):
				for _, pe := range params.Errors {
					report.Errors = append(report.Errors, pe.Error())
				}
			default:
				report.Errors = []string{verr.Error()}
			}

			if a.cfg.Format != formatText {
				if err := a.encode(report); err != nil {
					return err
				}
			} else {
				a.printReport(report)
			}
			if !report.Valid {
				return errInvalidInput
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fillToken, "fill-token", false, "generate an idempotency token when absent")
	return cmd
}

func (a *app) printReport(r validationReport) {
	if r.Valid {
		fmt.Fprintf(a.out, "%s %s\n", color.GreenString("valid"), r.Operation)
		if r.Request != "" {
			fmt.Fprintf(a.out, "  %s\n", r.Request)
		}
	} else {
		fmt.Fprintf(a.out, "%s %s\n", color.RedString("invalid"), r.Operation)
		for _, e := range r.Errors {
			fmt.Fprintf(a.out, "  - %s\n", e)
		}
	}
	fmt.Fprintf(a.out, "  %s\n", color.HiBlackString(r.Input))
}

type fieldInfo struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	Location     string `json:"location" yaml:"location"`
	LocationName string `json:"locationName" yaml:"locationName"`
	Required     bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Min          string `json:"min,omitempty" yaml:"min,omitempty"`
	Max          string `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern      string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Sensitive    bool   `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
}

type operationDescription struct {
	operationInfo `yaml:",inline"`
	Fields        []fieldInfo `json:"fields" yaml:"fields"`
}

func describeFields(in chimemessaging.Input) []fieldInfo {
	t := reflect.TypeOf(in)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fi := fieldInfo{
			Name:         sf.Name,
			Type:         sf.Type.String(),
			Location:     sf.Tag.Get("location"),
			LocationName: sf.Tag.Get("locationName"),
			Required:     sf.Tag.Get("required") == "true",
			Min:          sf.Tag.Get("min"),
			Max:          sf.Tag.Get("max"),
			Pattern:      sf.Tag.Get("pattern"),
			Sensitive:    sf.Tag.Get("sensitive") == "true",
		}
		if fi.Location == "" {
			fi.Location = "body"
			fi.LocationName, _, _ = strings.Cut(sf.Tag.Get("json"), ",")
		}
		fields = append(fields, fi)
	}
	return fields
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <Operation>",
		Short: "Show an operation's binding and input fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := chimemessaging.LookupOperation(args[0])
			if !ok {
				return unknownName("operation", args[0], chimemessaging.OperationNames())
			}
			desc := operationDescription{
				operationInfo: newOperationInfo(op),
				Fields:        describeFields(op.NewInput()),
			}
			if a.cfg.Format != formatText {
				return a.encode(desc)
			}

			fmt.Fprintf(a.out, "%s %s %s\n", color.New(color.Bold).Sprint(op.Name), op.Method, op.Path)
			rows := make([][]string, len(desc.Fields))
			for i, f := range desc.Fields {
				rows[i] = []string{f.Name, f.Type, f.Location, f.LocationName, strconv.FormatBool(f.Required)}
			}
			return a.printTable([]string{"FIELD", "TYPE", "LOCATION", "NAME", "REQUIRED"}, rows)
		},
	}
}

// printTable aligns rows under a bold header. Colour is applied after
// alignment so escape sequences do not count toward column widths.
func (a *app) printTable(header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	head, body, _ := strings.Cut(buf.String(), "\n")
	if _, err := fmt.Fprintln(a.out, color.New(color.Bold).Sprint(head)); err != nil {
		return err
	}
	_, err := io.WriteString(a.out, body)
	return err
}

func unknownName(kind, name string, candidates []string) error {
	if s := core.Suggest(name, candidates); s != "" {
		return fmt.Errorf("unknown %s %q, did you mean %q?", kind, name, s)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}

func (a *app) readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(a.in)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", arg, err)
	}
	return data, nil
}

// decodeInput fills in from a JSON document. Body fields use their wire
// names; URI, query and header fields use their Go field names.
func decodeInput(data []byte, in chimemessaging.Input) error {
	if err := json.Unmarshal(data, in); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v := reflect.ValueOf(in).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get("location") == "" {
			continue
		}
		msg, ok := raw[sf.Name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, v.Field(i).Addr().Interface()); err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
	}
	return nil
}

func (a *app) printList(items []string) error {
	if a.cfg.Format != formatText {
		return a.encode(items)
	}
	for _, s := range items {
		fmt.Fprintln(a.out, s)
	}
	return nil
}

func (a *app) encode(v any) error {
	switch a.cfg.Format {
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
