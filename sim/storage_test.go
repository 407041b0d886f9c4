package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Storage", func() {
	var s *storage

	BeforeEach(func() {
		s = newStorage(3 * pageSize)
	})

	It("should read zeros from untouched memory", func() {
		buf := []byte{1, 2, 3, 4}
		Expect(s.read(0x10, buf)).To(Succeed())
		Expect(buf).To(Equal([]byte{0, 0, 0, 0}))
		Expect(s.allocated()).To(BeZero())
	})

	It("should read and write in a single page", func() {
		Expect(s.write(0, []byte{1, 2, 3, 4})).To(Succeed())

		buf := make([]byte, 2)
		Expect(s.read(1, buf)).To(Succeed())
		Expect(buf).To(Equal([]byte{2, 3}))
		Expect(s.allocated()).To(Equal(1))
	})

	It("should read and write across pages", func() {
		Expect(s.write(pageSize-2, []byte{1, 2, 3, 4})).To(Succeed())

		buf := make([]byte, 4)
		Expect(s.read(pageSize-2, buf)).To(Succeed())
		Expect(buf).To(Equal([]byte{1, 2, 3, 4}))
		Expect(s.allocated()).To(Equal(2))
	})

	It("should read a mix of touched and untouched pages", func() {
		Expect(s.write(pageSize, []byte{9})).To(Succeed())

		buf := []byte{7, 7, 7}
		Expect(s.read(pageSize-2, buf)).To(Succeed())
		Expect(buf).To(Equal([]byte{0, 0, 9}))
	})

	It("should reject accesses beyond the capacity", func() {
		Expect(s.write(3*pageSize, []byte{1})).To(MatchError(ErrBeyondCapacity))
		Expect(s.write(3*pageSize-2, []byte{1, 2, 3, 4})).To(MatchError(ErrBeyondCapacity))
		Expect(s.read(3*pageSize, make([]byte, 1))).To(MatchError(ErrBeyondCapacity))
		Expect(s.allocated()).To(BeZero())
	})
})
