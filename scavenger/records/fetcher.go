package records

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

const (
	fetcherLogTag = "RecordFetcher"

	returnFields = "name,ipv4addr,ipv6addr,last_queried,extattrs"
	maxResults   = "1000"
)

// ErrInterrupted reports that an in-progress fetch observed shutdown.
var ErrInterrupted = errors.New("fetch interrupted")

type HTTPClientGetter interface {
	Get(endpoint string) (*http.Response, error)
}

type page struct {
	Result     []Record `json:"result"`
	NextPageID string   `json:"next_page_id"`
}

// Fetcher retrieves every record of one type through WAPI paging. Pages
// for a given record type are requested strictly in sequence, since each
// page's cursor comes from the previous response. A single Fetcher is safe
// to use from multiple goroutines fetching different record types; every
// page request claims a slot from the shared pool.
type Fetcher struct {
	client   HTTPClientGetter
	baseURL  string
	slots    *SlotPool
	shutdown chan struct{}
	logger   boshlog.Logger
}

func NewFetcher(client HTTPClientGetter, baseURL string, slots *SlotPool, shutdown chan struct{}, logger boshlog.Logger) *Fetcher {
	return &Fetcher{
		client:   client,
		baseURL:  baseURL,
		slots:    slots,
		shutdown: shutdown,
		logger:   logger,
	}
}

// Fetch returns all records of recordType in page-arrival order.
func (f *Fetcher) Fetch(recordType string) ([]Record, error) {
	f.logger.Info(fetcherLogTag, "Fetching %s records", recordType)

	all := []Record{}
	pageID := ""

	for {
		select {
		case <-f.shutdown:
			return nil, ErrInterrupted
		default:
		}

		p, err := f.fetchPage(recordType, pageID)
		if err != nil {
			return nil, err
		}

		all = append(all, p.Result...)

		if p.NextPageID == "" {
			break
		}
		pageID = p.NextPageID
	}

	f.warnMalformedNames(all)
	f.logger.Info(fetcherLogTag, "Retrieved %d %s records", len(all), recordType)

	return all, nil
}

func (f *Fetcher) fetchPage(recordType, pageID string) (page, error) {
	requestURL := f.pageURL(recordType, pageID)

	var response *http.Response
	var err error

	f.slots.Do(func() {
		response, err = f.client.Get(requestURL)
	})
	if err != nil {
		return page{}, bosherr.WrapErrorf(err, "Requesting %s records", recordType)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return page{}, bosherr.Errorf("Requesting %s records: got %s", recordType, response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return page{}, bosherr.WrapErrorf(err, "Reading %s records page", recordType)
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return page{}, bosherr.WrapErrorf(err, "Parsing %s records page", recordType)
	}

	return p, nil
}

func (f *Fetcher) pageURL(recordType, pageID string) string {
	params := url.Values{}
	params.Set("_return_fields", returnFields)
	params.Set("_paging", "1")
	params.Set("_max_results", maxResults)
	if pageID != "" {
		params.Set("_page_id", pageID)
	}

	return f.baseURL + "/" + recordType + "?" + params.Encode()
}

func (f *Fetcher) warnMalformedNames(recs []Record) {
	for _, rec := range recs {
		if _, ok := dns.IsDomainName(rec.Name); !ok {
			f.logger.Warn(fetcherLogTag, "Record with address %s has malformed name '%s'", rec.Address(), rec.Name)
		}
	}
}
