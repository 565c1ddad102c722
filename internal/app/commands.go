package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/denmor86/calc-web/internal/logger"
	"github.com/denmor86/calc-web/internal/models"
	"github.com/denmor86/calc-web/internal/view"
	"github.com/denmor86/calc-web/internal/worker"
	"github.com/spf13/pflag"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownType     = errors.New("operation is not available")
	ErrInvalidInterval = errors.New("refresh interval must be positive")
)

type command func(a *App, ctx context.Context, args []string) error

var commands = map[string]command{
	"sign-in":    (*App).signIn,
	"sign-out":   (*App).signOut,
	"profile":    (*App).profile,
	"operations": (*App).operations,
	"records":    (*App).records,
	"perform":    (*App).perform,
	"delete":     (*App).delete,
	"watch":      (*App).watch,
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet(name, pflag.ContinueOnError)
}

// tableFlags - флаги страницы и сортировки таблицы записей
type tableFlags struct {
	skip    int
	orderBy string
	sortBy  string
}

func (f *tableFlags) register(flags *pflag.FlagSet) {
	flags.IntVar(&f.skip, "skip", 0, "Records to skip.")
	flags.StringVar(&f.orderBy, "order-by", "", "Sort column: operationType, cost, operationResult, date.")
	flags.StringVar(&f.sortBy, "sort-by", view.SortDesc, "Sort direction: asc or desc.")
}

func (a *App) newTable(f tableFlags) (*view.RecordsTable, error) {
	var table *view.RecordsTable
	// после удаления страница перезагружается с сортировкой таблицы
	removeRecord := func(ctx context.Context, recordID string, _ models.PaginatedParams) error {
		return a.API.Remove(ctx, recordID, table.Query())
	}
	table = view.NewRecordsTable(a.API.Records, removeRecord, a.Config.ResultsLimit)
	table.SetSkip(f.skip)
	if f.orderBy == "" {
		return table, nil
	}
	if !slices.ContainsFunc(view.Columns, func(c view.Column) bool { return c.Key == f.orderBy }) {
		return nil, fmt.Errorf("%w: %s", view.ErrUnknownColumn, f.orderBy)
	}
	if f.sortBy != view.SortAsc && f.sortBy != view.SortDesc {
		return nil, fmt.Errorf("invalid sort direction %q", f.sortBy)
	}
	table.SetSorting(view.Sorting{OrderBy: f.orderBy, SortBy: f.sortBy})
	return table, nil
}

func (a *App) signIn(ctx context.Context, args []string) error {
	flags := newFlagSet("sign-in")
	form := view.NewSignInForm(a.API.AuthSession, a.API.SignIn)
	flags.StringVarP(&form.Email, "email", "e", "", "Account email.")
	flags.StringVarP(&form.Password, "password", "p", "", "Account password.")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := form.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Signed in as", strings.TrimSpace(form.Email))
	return nil
}

func (a *App) signOut(ctx context.Context, _ []string) error {
	header := view.NewHeader(a.API.User, a.API.SignOut)
	if err := header.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Signed out")
	return nil
}

func (a *App) profile(ctx context.Context, _ []string) error {
	if _, err := a.API.LoadProfile(ctx); err != nil {
		return err
	}
	a.printHeader(view.NewHeader(a.API.User, a.API.SignOut))
	return nil
}

func (a *App) operations(ctx context.Context, _ []string) error {
	page, err := a.API.LoadOperations(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tINPUT")
	for _, op := range view.SortOperations(page.Result) {
		config, ok := view.LookupOperation(op.Type)
		if !ok {
			fmt.Fprintf(w, "%s\t%s\t%s\n", op.Type, view.UnsupportedOperation, "")
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", op.Type, config.Name, config.Input.Label(0))
	}
	return w.Flush()
}

func (a *App) records(ctx context.Context, args []string) error {
	var tf tableFlags
	flags := newFlagSet("records")
	tf.register(flags)
	next := flags.Bool("next", false, "Show the next page.")
	back := flags.Bool("back", false, "Show the previous page.")
	if err := flags.Parse(args); err != nil {
		return err
	}
	table, err := a.newTable(tf)
	if err != nil {
		return err
	}
	if err := table.Load(ctx); err != nil {
		return err
	}
	switch {
	case *next:
		if _, err := table.Next(ctx); err != nil {
			return err
		}
	case *back:
		if _, err := table.Back(ctx); err != nil {
			return err
		}
	}
	return a.printTable(table)
}

func (a *App) perform(ctx context.Context, args []string) error {
	var tf tableFlags
	flags := newFlagSet("perform")
	tf.register(flags)
	options := flags.StringSlice("options", nil, "Enabled string generator options, e.g. Lowercase,Numbers.")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: operation type", ErrMissingArgument)
	}
	operationType := models.OperationType(flags.Arg(0))

	page, err := a.API.LoadOperations(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(page.Result, func(op models.Operation) bool { return op.Type == operationType })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownType, operationType)
	}
	form, err := view.NewOperationForm(page.Result[idx], a.API.PerformOperation)
	if err != nil {
		return err
	}
	if err := form.SetValues(flags.Args()[1:]...); err != nil {
		return err
	}
	if flags.Changed("options") {
		if err := setOptions(form, *options); err != nil {
			return err
		}
	}
	req, err := form.Request()
	if err != nil {
		return err
	}

	table, err := a.newTable(tf)
	if err != nil {
		return err
	}
	record, err := a.API.Perform(ctx, req, table.Query())
	if err != nil {
		return err
	}
	row := view.NewRecordRow(record)
	fmt.Fprintf(a.Out, "%s = %s\n", row.Expression, fmt.Sprint(record.OperationResult))
	fmt.Fprintf(a.Out, "Cost: %s, balance: %s\n", row.Cost, row.Balance)
	return nil
}

// setOptions - включает только перечисленные флаги генератора строк
func setOptions(form *view.OperationForm, enabled []string) error {
	for _, name := range enabled {
		if !slices.ContainsFunc(form.Options(), func(o view.OptionValue) bool { return strings.EqualFold(o.Name, name) }) {
			return fmt.Errorf("%w: %s", view.ErrUnknownOption, name)
		}
	}
	for _, opt := range form.Options() {
		on := slices.ContainsFunc(enabled, func(name string) bool { return strings.EqualFold(opt.Name, name) })
		if err := form.SetOption(opt.Name, on); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	var tf tableFlags
	flags := newFlagSet("delete")
	tf.register(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: record id", ErrMissingArgument)
	}
	table, err := a.newTable(tf)
	if err != nil {
		return err
	}
	if err := table.Delete(ctx, flags.Arg(0)); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Deleted", flags.Arg(0))
	return a.printTable(table)
}

// watch - периодическое обновление баланса и записей до сигнала остановки
func (a *App) watch(ctx context.Context, args []string) error {
	var tf tableFlags
	flags := newFlagSet("watch")
	tf.register(flags)
	interval := flags.Duration("interval", worker.DefaultPollInterval, "Refresh interval.")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *interval <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidInterval, *interval)
	}
	table, err := a.newTable(tf)
	if err != nil {
		return err
	}
	header := view.NewHeader(a.API.User, a.API.SignOut)

	refresher := worker.NewRefresher(a.API, a.Client.Breaker, table.Query)
	refresher.PollInterval = *interval
	refresher.OnReload = func(err error) {
		if err != nil {
			fmt.Fprintln(a.Out, "Refresh failed:", err)
			return
		}
		fmt.Fprintln(a.Out, time.Now().Format(time.TimeOnly))
		a.printHeader(header)
		if err := a.printTable(table); err != nil {
			logger.Warnw("print records failed", "error", err)
		}
	}
	refresher.Refresh(ctx)
	refresher.Start(ctx)
	<-ctx.Done()
	refresher.Stop()
	return nil
}

func (a *App) printHeader(header *view.Header) {
	fmt.Fprintln(a.Out, header.Email())
	if balance, ok := header.Balance(); ok {
		fmt.Fprintln(a.Out, "Balance:", balance)
	}
}

func (a *App) printTable(table *view.RecordsTable) error {
	if table.Empty() {
		fmt.Fprintln(a.Out, view.EmptyRecordsMessage)
		return nil
	}
	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOPERATION\tEXPRESSION\tCOST\tRESULT\tDATE\tBALANCE")
	for _, row := range table.Rows() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.Operation, row.Expression, row.Cost, row.Result, row.Date, row.Balance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, table.Summary())
	return nil
}
