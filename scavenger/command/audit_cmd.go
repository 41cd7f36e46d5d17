package command

import (
	"fmt"

	"code.cloudfoundry.org/clock"

	boshui "github.com/cloudfoundry/bosh-cli/v7/ui"
	boshtbl "github.com/cloudfoundry/bosh-cli/v7/ui/table"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"dns-scavenger/gridclient"
	"dns-scavenger/scavenger/audit"
	"dns-scavenger/scavenger/config"
	"dns-scavenger/scavenger/records"
	"dns-scavenger/scavenger/report"
)

type AuditCmd struct {
	ConfigPath string `long:"config" env:"SCAVENGER_CONFIG" description:"Path to a JSON config file"`

	Grid     string `long:"grid" env:"GRID_ADDRESS" description:"Grid Master IP or FQDN"`
	Username string `long:"username" env:"GRID_USERNAME" description:"Admin username"`
	Password string `long:"password" env:"GRID_PASSWORD" description:"Admin password"`

	WAPIVersion string `long:"wapi-version" env:"WAPI_VERSION" description:"WAPI version the grid speaks"`
	RecordType  string `long:"record-type" env:"RECORD_TYPE" description:"WAPI record type to audit"`

	CloudDays  string `long:"cloud-days" env:"CLOUD_THRESHOLD_DAYS" description:"Staleness window for cloud records, in days"`
	OnPremDays string `long:"onprem-days" env:"ONPREM_THRESHOLD_DAYS" description:"Staleness window for on-prem records, in days"`

	CACertPath string `long:"ca-cert-path" env:"GRID_CA_CERT_PATH" description:"CA certificate for grid TLS verification"`
	Insecure   bool   `long:"insecure" env:"GRID_INSECURE" description:"Skip grid TLS certificate verification"`

	OutputDir string `long:"output-dir" env:"SCAVENGER_OUTPUT_DIR" description:"Directory report files are written to"`

	// DryRun gates report emission; the audit itself never mutates the
	// grid. main leaves it on.
	DryRun bool

	UI       boshui.UI
	Prompter Prompter
	FS       boshsys.FileSystem
	Clock    clock.Clock
	Shutdown chan struct{}
}

func (o *AuditCmd) Execute(args []string) error {
	logger := boshlog.NewLogger(boshlog.LevelNone)

	if o.UI == nil {
		confUI := boshui.NewConfUI(logger)
		confUI.EnableColor()
		o.UI = confUI
	}
	if o.Prompter == nil {
		o.Prompter = o.UI
	}
	if o.FS == nil {
		o.FS = boshsys.NewOsFileSystem(logger)
	}
	if o.Clock == nil {
		o.Clock = clock.NewClock()
	}
	if o.Shutdown == nil {
		o.Shutdown = make(chan struct{})
	}

	conf, err := o.resolveConfig()
	if err != nil {
		return err
	}

	thresholds, err := o.resolveThresholds(conf)
	if err != nil {
		return err
	}

	client, err := gridclient.New(conf.Username, conf.Password, gridclient.Options{
		CACertPath:         conf.CACertPath,
		InsecureSkipVerify: conf.SkipTLSVerify,
	}, logger)
	if err != nil {
		return err
	}

	if conf.SkipTLSVerify {
		o.UI.PrintLinef("WARNING: grid TLS certificate verification is disabled")
	}

	slots, err := records.NewSlotPool(conf.MaxInFlightRequests)
	if err != nil {
		return err
	}
	defer slots.Close()

	fetcher := records.NewFetcher(client, conf.BaseURL(), slots, o.Shutdown, logger)
	auditor := audit.NewAuditor(fetcher, o.Clock, logger)

	o.UI.PrintLinef("Starting analysis...")
	o.UI.PrintLinef("- Cloud threshold: %d days", thresholds.CloudDays)
	o.UI.PrintLinef("- On-prem threshold: %d days", thresholds.OnPremDays)
	o.UI.PrintLinef("Fetching %s records...", conf.RecordType)

	result, err := auditor.Run(conf.RecordType, thresholds)
	if err != nil {
		return err
	}

	o.UI.PrintLinef("Total records retrieved: %d", result.TotalRecords)
	o.printSummary(result)

	if o.DryRun && len(result.Candidates) > 0 {
		emitter := report.NewEmitter(o.FS, o.Clock, conf.OutputDir, logger)

		paths, err := emitter.Emit(result)
		if err != nil {
			return err
		}

		o.UI.PrintLinef("Dry run complete.")
		o.UI.PrintLinef("- Technical manifest (JSON): %s", paths.Manifest)
		o.UI.PrintLinef("- Review file (CSV): %s", paths.ReviewCSV)
		o.UI.PrintLinef("- Live summary: %s", paths.Summary)
	}

	return nil
}

func (o *AuditCmd) resolveConfig() (config.Config, error) {
	conf := config.Default()

	if o.ConfigPath != "" {
		loaded, err := config.LoadFromFile(o.ConfigPath, o.FS)
		if err != nil {
			return config.Config{}, err
		}
		conf = loaded
	}

	if o.Grid != "" {
		conf.GridAddress = o.Grid
	}
	if o.Username != "" {
		conf.Username = o.Username
	}
	if o.Password != "" {
		conf.Password = o.Password
	}
	if o.WAPIVersion != "" {
		conf.WAPIVersion = o.WAPIVersion
	}
	if o.RecordType != "" {
		conf.RecordType = o.RecordType
	}
	if o.CACertPath != "" {
		conf.CACertPath = o.CACertPath
	}
	if o.Insecure {
		conf.SkipTLSVerify = true
	}
	if o.OutputDir != "" {
		conf.OutputDir = o.OutputDir
	}

	var err error

	if conf.GridAddress == "" {
		conf.GridAddress, err = o.Prompter.AskForText("Grid Master IP/FQDN")
		if err != nil {
			return config.Config{}, err
		}
	}
	if conf.Username == "" {
		conf.Username, err = o.Prompter.AskForText("Admin username")
		if err != nil {
			return config.Config{}, err
		}
	}
	if conf.Password == "" {
		conf.Password, err = o.Prompter.AskForPassword("Admin password")
		if err != nil {
			return config.Config{}, err
		}
	}

	return conf, nil
}

func (o *AuditCmd) resolveThresholds(conf config.Config) (audit.Thresholds, error) {
	cloudInput := o.CloudDays
	onPremInput := o.OnPremDays

	if cloudInput == "" && onPremInput == "" && o.ConfigPath != "" {
		return audit.Thresholds{
			CloudDays:  conf.CloudThresholdDays,
			OnPremDays: conf.OnPremThresholdDays,
		}, nil
	}

	var err error

	if cloudInput == "" {
		cloudInput, err = o.Prompter.AskForText("Cloud records threshold in days (e.g. 7)")
		if err != nil {
			return audit.Thresholds{}, err
		}
	}
	if onPremInput == "" {
		onPremInput, err = o.Prompter.AskForText("On-prem records threshold in days (e.g. 90)")
		if err != nil {
			return audit.Thresholds{}, err
		}
	}

	cloudDays, onPremDays, usedDefaults := config.ParseThresholds(cloudInput, onPremInput)
	if usedDefaults {
		o.UI.PrintLinef("Invalid threshold input. Defaulting to cloud: %d, on-prem: %d.", cloudDays, onPremDays)
	}

	return audit.Thresholds{CloudDays: cloudDays, OnPremDays: onPremDays}, nil
}

func (o *AuditCmd) printSummary(result audit.Result) {
	table := boshtbl.Table{
		Title:           "Analysis results",
		FillFirstColumn: true,
		Header: []boshtbl.Header{
			boshtbl.NewHeader("Metric"),
			boshtbl.NewHeader("Value"),
		},
		Rows: [][]boshtbl.Value{
			{boshtbl.NewValueString("Total records"), boshtbl.NewValueInt(result.TotalRecords)},
			{boshtbl.NewValueString("Cloud candidates"), boshtbl.NewValueInt(result.CloudCandidates)},
			{boshtbl.NewValueString("On-prem candidates"), boshtbl.NewValueInt(result.OnPremCandidates)},
			{boshtbl.NewValueString("Safe records"), boshtbl.NewValueInt(result.SafeRecords())},
			{boshtbl.NewValueString("Health"), boshtbl.NewValueString(fmt.Sprintf("%.1f%%", result.HealthPercentage))},
		},
	}

	o.UI.PrintTable(table)
}
