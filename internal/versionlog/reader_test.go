package versionlog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/versioned-list/internal/versionlog"
)

var _ = Describe("Reader", func() {
	var log *versionlog.Log

	BeforeEach(func() {
		log = versionlog.New()
		for _, value := range []int{10, 20, 30, 40} {
			log.Append(value)
		}
	})

	readAll := func(reader *versionlog.Reader) []versionlog.Entry {
		var result []versionlog.Entry
		for reader.Next() {
			result = append(result, reader.Value())
		}
		return result
	}

	It("should return nothing for version 0", func() {
		reader := log.NewReader(0)
		Expect(reader.Version()).To(Equal(uint64(0)))
		Expect(reader.Next()).To(BeFalse())
	})

	It("should return the entries visible at the version", func() {
		Expect(readAll(log.NewReader(2))).To(Equal([]versionlog.Entry{
			{Value: 10, Version: 1},
			{Value: 20, Version: 2},
		}))
	})

	It("should match the snapshot for every version", func() {
		for version := uint64(0); version <= 6; version++ {
			var values []int
			for _, entry := range readAll(log.NewReader(version)) {
				values = append(values, entry.Value)
			}
			Expect(values).To(HaveExactElements(log.SnapshotAsOf(version)))
		}
	})

	It("should not see entries appended after it was created", func() {
		reader := log.NewReader(100)
		log.Append(50)
		log.Append(60)

		entries := readAll(reader)
		Expect(entries).To(HaveLen(4))
		Expect(entries[3]).To(Equal(versionlog.Entry{Value: 40, Version: 4}))
	})

	It("should keep returning false after the end was reached", func() {
		reader := log.NewReader(1)
		Expect(reader.Next()).To(BeTrue())
		Expect(reader.Value().Value).To(Equal(10))
		Expect(reader.Next()).To(BeFalse())
		Expect(reader.Next()).To(BeFalse())
	})
})
