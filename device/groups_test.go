package device

import "testing"

func TestGroupConsistency(t *testing.T) {
	for _, g := range Groups() {
		sims := g.Simulators()
		for _, d := range g.Devices() {
			if !d.IsOneOf(g.Devices()) || !g.Contains(d) {
				t.Errorf("%s: expected %v in group", g.Name(), d)
			}
			sim := Simulator(d)
			if !sim.IsOneOf(sims) || !g.Contains(sim) {
				t.Errorf("%s: expected %v in group", g.Name(), sim)
			}
		}
	}
}

func TestGroupByName(t *testing.T) {
	for _, name := range GroupNames() {
		g, ok := GroupByName(name)
		if !ok || g.Name() != name {
			t.Errorf("lookup %q failed", name)
		}
	}
	if _, ok := GroupByName("toasters"); ok {
		t.Error("expected missing group")
	}
}

func TestPredicates(t *testing.T) {
	type check struct {
		name string
		f    func(Device) bool
	}
	for _, test := range []struct {
		device Device
		yes    []check
		no     []check
	}{
		{
			device: New(IPhone13Pro),
			yes: []check{
				{"phone", Device.IsPhone},
				{"face id", Device.IsFaceIDCapable},
				{"biometric", Device.HasBiometricSensor},
				{"notch", Device.HasSensorHousing},
				{"lidar", Device.HasLidarSensor},
				{"5g", Device.Has5GSupport},
				{"telephoto", Device.HasTelephotoCamera},
			},
			no: []check{
				{"touch id", Device.IsTouchIDCapable},
				{"dynamic island", Device.HasDynamicIsland},
				{"simulator", Device.IsSimulator},
				{"pad", Device.IsPad},
			},
		},
		{
			device: New(IPadAir4),
			yes: []check{
				{"pad", Device.IsPad},
				{"touch id", Device.IsTouchIDCapable},
				{"pencil", Device.IsApplePencilCapable},
				{"pencil 2", Device.SupportsApplePencil2},
				{"usb-c", Device.HasUSBCConnectivity},
			},
			no: []check{
				{"face id", Device.IsFaceIDCapable},
				{"pencil 1", Device.SupportsApplePencil1},
			},
		},
		{
			device: Simulator(New(IPhone15Pro)),
			yes: []check{
				{"simulator", Device.IsSimulator},
				{"phone", Device.IsPhone},
				{"dynamic island", Device.HasDynamicIsland},
			},
		},
		{
			device: Unknown("iPhone99,1"),
			no: []check{
				{"phone", Device.IsPhone},
				{"face id", Device.IsFaceIDCapable},
				{"simulator", Device.IsSimulator},
				{"biometric", Device.HasBiometricSensor},
			},
		},
	} {
		for _, c := range test.yes {
			if !c.f(test.device) {
				t.Errorf("%v: expected %s", test.device, c.name)
			}
		}
		for _, c := range test.no {
			if c.f(test.device) {
				t.Errorf("%v: unexpected %s", test.device, c.name)
			}
		}
	}
}

func TestAllSimulators(t *testing.T) {
	sims := AllSimulators()
	if have, want := len(sims), len(Models()); have != want {
		t.Errorf("have: %d, want: %d", have, want)
	}
	for _, d := range sims {
		if !d.IsSimulator() {
			t.Errorf("%v: expected simulator", d)
		}
		if d.Real().IsSimulator() {
			t.Errorf("%v: real device reported as simulator", d)
		}
	}
}

func TestFamiliesPartition(t *testing.T) {
	families := []*Group{GroupPods, GroupPhones, GroupPads, GroupTVs, GroupWatches, GroupHomePods, GroupVision}
	for _, m := range Models() {
		d := New(m)
		var n int
		for _, g := range families {
			if g.Contains(d) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%v: in %d families", d, n)
		}
	}
}
