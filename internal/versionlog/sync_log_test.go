package versionlog_test

import (
	"slices"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/versioned-list/internal/versionlog"
)

var _ = Describe("SyncLog", func() {
	It("should behave like the log when used from a single Go routine", func() {
		log := versionlog.NewSyncLog()
		Expect(log.Append(1)).To(Equal(uint64(1)))
		Expect(log.Append(2)).To(Equal(uint64(2)))
		Expect(log.Append(3)).To(Equal(uint64(3)))

		Expect(log.CurrentVersion()).To(Equal(uint64(3)))
		Expect(log.Len()).To(Equal(3))
		Expect(log.SnapshotAsOf(0)).To(BeEmpty())
		Expect(log.SnapshotAsOf(2)).To(Equal([]int{1, 2}))
		Expect(log.Latest()).To(Equal([]int{1, 2, 3}))
		Expect(log.Entries()).To(HaveLen(3))
		Expect(log.History()).To(Equal([][]int{{}, {1}, {1, 2}, {1, 2, 3}}))
	})

	It("should hand out every version exactly once with concurrent appends", func() {
		const routines = 8
		const appendsPerRoutine = 500

		log := versionlog.NewSyncLog(versionlog.WithInitialCapacity(1))
		versions := make([][]uint64, routines)

		var wg sync.WaitGroup
		for routine := range routines {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for i := range appendsPerRoutine {
					versions[routine] = append(versions[routine], log.Append(routine*appendsPerRoutine+i))
					Expect(log.SnapshotAsOf(log.CurrentVersion())).ToNot(BeEmpty())
				}
			}()
		}
		wg.Wait()

		var allVersions []uint64
		for _, routineVersions := range versions {
			Expect(slices.IsSorted(routineVersions)).To(BeTrue())
			allVersions = append(allVersions, routineVersions...)
		}
		slices.Sort(allVersions)
		Expect(allVersions).To(HaveLen(routines * appendsPerRoutine))
		for i, version := range allVersions {
			Expect(version).To(Equal(uint64(i + 1)))
		}

		for i, entry := range log.Entries() {
			Expect(entry.Version).To(Equal(uint64(i + 1)))
		}
	})
})
