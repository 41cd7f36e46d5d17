package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	"dns-scavenger/scavenger/config"
)

var _ = Describe("Config", func() {
	var fakeFileSystem *fakesys.FakeFileSystem

	BeforeEach(func() {
		fakeFileSystem = fakesys.NewFakeFileSystem()
	})

	Describe("LoadFromFile", func() {
		It("parses the config and fills in defaults", func() {
			err := fakeFileSystem.WriteFileString("/etc/scavenger.json", `{
				"grid_address": "grid.example.com",
				"username": "admin",
				"password": "infoblox"
			}`)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.LoadFromFile("/etc/scavenger.json", fakeFileSystem)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.GridAddress).To(Equal("grid.example.com"))
			Expect(c.WAPIVersion).To(Equal("2.13.1"))
			Expect(c.RecordType).To(Equal("record:a"))
			Expect(c.CloudThresholdDays).To(Equal(14))
			Expect(c.OnPremThresholdDays).To(Equal(30))
			Expect(c.MaxInFlightRequests).To(Equal(10))
			Expect(c.SkipTLSVerify).To(BeFalse())
		})

		It("keeps explicit settings", func() {
			err := fakeFileSystem.WriteFileString("/etc/scavenger.json", `{
				"grid_address": "grid.example.com",
				"wapi_version": "2.12",
				"record_type": "record:aaaa",
				"cloud_threshold_days": 7,
				"onprem_threshold_days": 90,
				"max_in_flight_requests": 4
			}`)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.LoadFromFile("/etc/scavenger.json", fakeFileSystem)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.WAPIVersion).To(Equal("2.12"))
			Expect(c.RecordType).To(Equal("record:aaaa"))
			Expect(c.CloudThresholdDays).To(Equal(7))
			Expect(c.OnPremThresholdDays).To(Equal(90))
			Expect(c.MaxInFlightRequests).To(Equal(4))
		})

		It("fails when the file is missing", func() {
			_, err := config.LoadFromFile("/etc/missing.json", fakeFileSystem)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Reading config file"))
		})

		It("fails when the file is not valid JSON", func() {
			err := fakeFileSystem.WriteFileString("/etc/scavenger.json", `grid_address: nope`)
			Expect(err).NotTo(HaveOccurred())

			_, err = config.LoadFromFile("/etc/scavenger.json", fakeFileSystem)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Parsing config file"))
		})
	})

	Describe("BaseURL", func() {
		It("builds the WAPI endpoint from the grid address", func() {
			c := config.Default()
			c.GridAddress = "grid.example.com"

			Expect(c.BaseURL()).To(Equal("https://grid.example.com/wapi/v2.13.1"))
		})

		It("keeps a grid address that already carries a scheme", func() {
			c := config.Default()
			c.GridAddress = "http://127.0.0.1:8080/wapi/v2.13.1"

			Expect(c.BaseURL()).To(Equal("http://127.0.0.1:8080/wapi/v2.13.1"))
		})
	})

	Describe("ParseThresholds", func() {
		It("parses both day counts", func() {
			cloudDays, onPremDays, usedDefaults := config.ParseThresholds("7", " 90 ")

			Expect(usedDefaults).To(BeFalse())
			Expect(cloudDays).To(Equal(7))
			Expect(onPremDays).To(Equal(90))
		})

		It("accepts zero-day windows", func() {
			cloudDays, onPremDays, usedDefaults := config.ParseThresholds("0", "0")

			Expect(usedDefaults).To(BeFalse())
			Expect(cloudDays).To(Equal(0))
			Expect(onPremDays).To(Equal(0))
		})

		It("falls back to the defaults when either value is invalid", func() {
			cloudDays, onPremDays, usedDefaults := config.ParseThresholds("soon", "90")

			Expect(usedDefaults).To(BeTrue())
			Expect(cloudDays).To(Equal(14))
			Expect(onPremDays).To(Equal(30))
		})

		It("rejects negative day counts", func() {
			_, _, usedDefaults := config.ParseThresholds("7", "-1")
			Expect(usedDefaults).To(BeTrue())
		})
	})
})
