package sim_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

var _ = Describe("Simulate", func() {
	var p sim.Params

	BeforeEach(func() {
		p = sim.DefaultParams()
	})

	Describe("trajectory shape", func() {
		It("produces floor(t_max/dt)+1 aligned samples", func() {
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Time).To(HaveLen(1001))
			Expect(traj.Position).To(HaveLen(1001))
			Expect(traj.Velocity).To(HaveLen(1001))
			Expect(traj.Steps()).To(Equal(1000))
		})

		DescribeTable("sample count",
			func(tMax, dt float64, expected int) {
				p.TMax, p.Dt = tMax, dt
				traj, err := sim.Simulate(p)
				Expect(err).NotTo(HaveOccurred())
				Expect(traj.Len()).To(Equal(expected))
			},
			Entry("exactly one step", 0.01, 0.01, 2),
			Entry("two steps", 0.02, 0.01, 3),
			Entry("fractional step is truncated", 0.025, 0.01, 3),
			Entry("coarse step", 1.0, 0.3, 4),
		)

		It("starts at the initial conditions exactly", func() {
			p.X0, p.V0 = -0.3, 2.5
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Time[0]).To(Equal(0.0))
			Expect(traj.Position[0]).To(Equal(-0.3))
			Expect(traj.Velocity[0]).To(Equal(2.5))
		})

		It("advances time by dt per sample", func() {
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			for i, t := range traj.Time {
				Expect(t).To(BeNumerically("~", float64(i)*p.Dt, 1e-9))
			}
		})
	})

	Describe("stepping rule", func() {
		It("matches the hand-worked two-step example", func() {
			p = sim.Params{Mass: 1, Stiffness: 10, X0: 1, V0: 0, TMax: 0.02, Dt: 0.01}
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Len()).To(Equal(3))

			Expect(traj.Velocity[1]).To(BeNumerically("~", -0.1, 1e-12))
			Expect(traj.Position[1]).To(BeNumerically("~", 0.999, 1e-12))
			Expect(traj.Time[1]).To(BeNumerically("~", 0.01, 1e-15))

			Expect(traj.Velocity[2]).To(BeNumerically("~", -0.1999, 1e-12))
			Expect(traj.Position[2]).To(BeNumerically("~", 0.997001, 1e-12))
			Expect(traj.Time[2]).To(BeNumerically("~", 0.02, 1e-15))
		})

		It("uses the updated velocity for the position update", func() {
			p = sim.Params{Mass: 1, Stiffness: 10, X0: 1, V0: 0, TMax: 0.01, Dt: 0.01}
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			// Naive Euler would leave x1 at 1.0 since v0 = 0.
			Expect(traj.Position[1]).To(BeNumerically("<", 1.0))
		})

		It("is bit-for-bit deterministic", func() {
			p.V0 = 0.7
			a, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			b, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Time).To(Equal(b.Time))
			for i := range a.Position {
				Expect(math.Float64bits(a.Position[i])).To(Equal(math.Float64bits(b.Position[i])))
				Expect(math.Float64bits(a.Velocity[i])).To(Equal(math.Float64bits(b.Velocity[i])))
			}
		})

		It("stays at rest when started at equilibrium", func() {
			p.X0, p.V0 = 0, 0
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Position).To(HaveEach(0.0))
			Expect(traj.Velocity).To(HaveEach(0.0))
		})
	})

	Describe("energy behaviour", func() {
		It("stays bounded when dt is small against the natural period", func() {
			p.TMax = 100
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			energy := traj.Energy(p.Mass, p.Stiffness)
			for _, e := range energy {
				Expect(e).To(BeNumerically("~", energy[0], 0.05*energy[0]))
			}
		})

		It("diverges when dt is far beyond the stability limit", func() {
			// natural period 2*pi*sqrt(1/10) ~ 1.99 s; stable only for dt < 2/omega ~ 0.63 s
			p.Dt = 1.0
			p.TMax = 50
			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			energy := traj.Energy(p.Mass, p.Stiffness)
			Expect(energy[len(energy)-1]).To(BeNumerically(">", 1e12*energy[0]))
		})
	})

	Describe("invalid parameters", func() {
		DescribeTable("fails before stepping",
			func(tMax, dt float64) {
				p.TMax, p.Dt = tMax, dt
				traj, err := sim.Simulate(p)
				Expect(err).To(MatchError(dynamo.ErrInvalidParameters))
				Expect(traj.Empty()).To(BeTrue())
			},
			Entry("t_max below dt", 0.005, 0.01),
			Entry("zero duration", 0.0, 0.01),
			Entry("negative duration", -1.0, 0.01),
			Entry("zero dt", 10.0, 0.0),
			Entry("NaN dt", 10.0, math.NaN()),
			Entry("step count overflow", 1e12, 1e-6),
		)

		It("reports the offending values", func() {
			p.TMax, p.Dt = 0.001, 0.01
			_, err := sim.Simulate(p)
			Expect(err).To(MatchError(ContainSubstring("no steps")))
		})

		It("does not reject non-positive mass on its own", func() {
			p.Mass = -1
			_, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("Params.Validate", func() {
	It("accepts the defaults", func() {
		Expect(sim.DefaultParams().Validate()).To(Succeed())
	})

	DescribeTable("rejects",
		func(mutate func(*sim.Params), field string) {
			p := sim.DefaultParams()
			mutate(&p)
			err := p.Validate()
			Expect(err).To(MatchError(dynamo.ErrInvalidParameters))

			var pe *dynamo.ParamError
			if field == "" {
				Expect(errors.As(err, &pe)).To(BeFalse())
				return
			}
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Field).To(Equal(field))
		},
		Entry("zero mass", func(p *sim.Params) { p.Mass = 0 }, "mass"),
		Entry("negative mass", func(p *sim.Params) { p.Mass = -2 }, "mass"),
		Entry("zero stiffness", func(p *sim.Params) { p.Stiffness = 0 }, "stiffness"),
		Entry("infinite x0", func(p *sim.Params) { p.X0 = math.Inf(1) }, "x0"),
		Entry("NaN v0", func(p *sim.Params) { p.V0 = math.NaN() }, "v0"),
		Entry("negative dt", func(p *sim.Params) { p.Dt = -0.01 }, "dt"),
		Entry("t_max shorter than dt", func(p *sim.Params) { p.TMax = 0.001 }, ""),
	)

	It("exposes the natural period", func() {
		p := sim.Params{Mass: 1, Stiffness: 1}
		Expect(p.NaturalPeriod()).To(BeNumerically("~", 2*math.Pi, 1e-12))
	})
})
