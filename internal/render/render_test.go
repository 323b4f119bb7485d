package render_test

import (
	"bytes"

	"github.com/goccy/go-yaml"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/versioned-list/internal/render"
)

var _ = Describe("FormatValues", func() {
	DescribeTable("should render values in brackets",
		func(values []int, expected string) {
			Expect(render.FormatValues(values)).To(Equal(expected))
		},
		Entry("nil", []int(nil), "[]"),
		Entry("empty", []int{}, "[]"),
		Entry("single value", []int{1}, "[1]"),
		Entry("multiple values", []int{1, 2, 3}, "[1, 2, 3]"),
		Entry("negative values", []int{-1, 0, -20}, "[-1, 0, -20]"),
	)
})

var _ = Describe("WriteText", func() {
	It("should write one line per snapshot", func() {
		var buffer bytes.Buffer
		Expect(render.WriteText(&buffer, []render.Snapshot{
			{Version: 1, Values: []int{1}},
			{Version: 2, Values: []int{1, 2}},
			{Version: 0, Values: []int{}},
		})).To(Succeed())
		Expect(buffer.String()).To(Equal("Version 1: [1]\nVersion 2: [1, 2]\nVersion 0: []\n"))
	})
})

var _ = Describe("WriteYAML", func() {
	It("should write snapshots which decode to the same content", func() {
		snapshots := []render.Snapshot{
			{Version: 1, Values: []int{1}},
			{Version: 3, Values: []int{1, 2, 3}},
		}

		var buffer bytes.Buffer
		Expect(render.WriteYAML(&buffer, snapshots)).To(Succeed())
		Expect(buffer.String()).To(ContainSubstring("version: 3"))

		var decoded []render.Snapshot
		Expect(yaml.Unmarshal(buffer.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(snapshots))
	})
})
