package audit_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"

	"dns-scavenger/scavenger/audit"
	"dns-scavenger/scavenger/audit/auditfakes"
	"dns-scavenger/scavenger/records"
)

var _ = Describe("Auditor", func() {
	var (
		fakeSource *auditfakes.FakeRecordSource
		fakeClock  *fakeclock.FakeClock
		fakeLogger *loggerfakes.FakeLogger
		auditor    *audit.Auditor
		now        time.Time
	)

	BeforeEach(func() {
		now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
		fakeSource = &auditfakes.FakeRecordSource{}
		fakeClock = fakeclock.NewFakeClock(now)
		fakeLogger = &loggerfakes.FakeLogger{}
		auditor = audit.NewAuditor(fakeSource, fakeClock, fakeLogger)
	})

	daysAgo := func(days int) *int64 {
		epoch := now.Add(-time.Duration(days) * 24 * time.Hour).Unix()
		return &epoch
	}

	Describe("Run", func() {
		Context("with a healthy record population", func() {
			BeforeEach(func() {
				fakeSource.FetchReturns([]records.Record{
					{Name: "a.com", IPv4Addr: "10.0.0.1", LastQueried: daysAgo(100), ExtendedAttributes: map[string]records.ExtendedAttribute{}},
					{Name: "b.com", IPv4Addr: "10.0.0.2", LastQueried: daysAgo(3), ExtendedAttributes: map[string]records.ExtendedAttribute{
						"Cloud_Provider": {Value: "AWS"},
					}},
				}, nil)
			})

			It("finds no candidates when both records are within threshold", func() {
				result, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 90})

				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSource.FetchArgsForCall(0)).To(Equal("record:a"))

				Expect(result.TotalRecords).To(Equal(2))
				Expect(result.Candidates).To(BeEmpty())
				Expect(result.CloudCandidates).To(Equal(0))
				Expect(result.OnPremCandidates).To(Equal(0))
				Expect(result.HealthPercentage).To(Equal(100.0))
			})

			It("flags the on-prem record once its window shrinks", func() {
				result, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 30})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Candidates).To(HaveLen(1))
				Expect(result.Candidates[0].Name).To(Equal("a.com"))
				Expect(result.CloudCandidates).To(Equal(0))
				Expect(result.OnPremCandidates).To(Equal(1))
				Expect(result.HealthPercentage).To(Equal(50.0))
			})
		})

		It("keeps candidates in fetch order", func() {
			fakeSource.FetchReturns([]records.Record{
				{Name: "z.com", IPv4Addr: "10.0.0.9"},
				{Name: "m.com", IPv4Addr: "10.0.0.5"},
				{Name: "a.com", IPv4Addr: "10.0.0.1"},
			}, nil)

			result, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 30})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Candidates).To(HaveLen(3))
			Expect(result.Candidates[0].Name).To(Equal("z.com"))
			Expect(result.Candidates[1].Name).To(Equal("m.com"))
			Expect(result.Candidates[2].Name).To(Equal("a.com"))
		})

		It("reports full health for an empty record set", func() {
			fakeSource.FetchReturns([]records.Record{}, nil)

			result, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 30})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.TotalRecords).To(Equal(0))
			Expect(result.HealthPercentage).To(Equal(100.0))
		})

		It("rounds the health percentage to one decimal", func() {
			fakeSource.FetchReturns([]records.Record{
				{Name: "a.com", LastQueried: daysAgo(1)},
				{Name: "b.com", LastQueried: daysAgo(1)},
				{Name: "c.com"},
			}, nil)

			result, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 30})
			Expect(err).NotTo(HaveOccurred())

			// 2 safe of 3 records
			Expect(result.HealthPercentage).To(Equal(66.7))
		})

		It("surfaces fetch failures unchanged", func() {
			fetchErr := errors.New("Requesting record:a records: got 502 Bad Gateway")
			fakeSource.FetchReturns(nil, fetchErr)

			_, err := auditor.Run("record:a", audit.Thresholds{CloudDays: 7, OnPremDays: 30})
			Expect(err).To(MatchError(fetchErr))
		})
	})
})
