package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

func testRegistry(t *testing.T) *constants.Registry {
	t.Helper()
	r, err := constants.NewRegistry(constants.TierVendor)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

func testTable() vehicle.Table {
	return vehicle.TableOf(
		vehicle.ConfigDeclaration{
			Config: vehicle.PropertyConfig{
				Prop:         0x11100100,
				Access:       vehicle.AccessRead,
				ChangeMode:   vehicle.ChangeModeStatic,
				ConfigString: "vin",
			},
			InitialValue: vehicle.RawPropValues{StringValue: "1GCARVIN123456789"},
		},
		vehicle.ConfigDeclaration{
			Config: vehicle.PropertyConfig{
				Prop:       0x15400500,
				Access:     vehicle.AccessReadWrite,
				ChangeMode: vehicle.ChangeModeOnChange,
				AreaConfigs: []vehicle.AreaConfig{
					{AreaID: 0x31, MinInt32Value: 1, MaxInt32Value: 7},
					{AreaID: 0x44, MinInt32Value: 1, MaxInt32Value: 7},
				},
			},
			InitialValue:      vehicle.RawPropValues{Int32Values: []int32{3}},
			InitialAreaValues: map[int32]vehicle.RawPropValues{0x31: {Int32Values: []int32{2}}},
		},
		vehicle.ConfigDeclaration{
			Config: vehicle.PropertyConfig{
				Prop:          0x21402001,
				Access:        vehicle.AccessReadWrite,
				ChangeMode:    vehicle.ChangeModeOnChange,
				MinSampleRate: 0.5,
				MaxSampleRate: 10,
				AreaConfigs: []vehicle.AreaConfig{
					{AreaID: 0, SupportedEnumValues: []int64{0, 1}},
				},
			},
			InitialValue: vehicle.RawPropValues{FloatValues: []float32{0.25, 1}},
		},
	)
}

func TestPropertyName(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		id   int32
		want string
	}{
		{0x11100100, "VehicleProperty::INFO_VIN"},
		{0x21402001, "VendorVehicleProperty::AMBIENT_LIGHT_MODE"},
		{0x11100fff, ""},
	}
	for _, tt := range tests {
		if got := PropertyName(reg, tt.id); got != tt.want {
			t.Errorf("PropertyName(0x%x) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if got := PropertyName(nil, 0x11100100); got != "" {
		t.Errorf("PropertyName(nil) = %q, want empty", got)
	}
}

func TestAreaName(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name string
		prop int32
		area int32
		want string
	}{
		{"global", 0x11100100, 0, "GLOBAL"},
		{"hvac combined seats", 0x15400500, 0x75, "HVAC_ALL"},
		{"hvac left", 0x15400500, 0x31, "HVAC_LEFT"},
		{"single seat", 0x15400500, 0x1, "SEAT_1_LEFT"},
		{"window enum", 0x13400BC0, 0x10, "ROW_1_LEFT"},
		{"mirror enum", 0x1440050C, 0x2, "DRIVER_RIGHT"},
		{"wheel", 0x17600309, 0x8, "WHEEL_REAR_RIGHT"},
		{"door", 0x16400B00, 0x20000000, "DOOR_REAR"},
		{"unknown seat", 0x15400500, 0x2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreaName(reg, tt.prop, tt.area); got != tt.want {
				t.Errorf("AreaName(0x%x, 0x%x) = %q, want %q", tt.prop, tt.area, got, tt.want)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		input   string
		want    Query
		wantErr error
	}{
		{input: "0x11100100", want: Query{ID: 0x11100100, HasID: true}},
		{input: "286261504", want: Query{ID: 286261504, HasID: true}},
		{input: "  info_vin ", want: Query{Name: "INFO_VIN"}},
		{input: "VehicleProperty::INFO_VIN", want: Query{Tag: "VehicleProperty", Name: "INFO_VIN"}},
		{input: "", wantErr: ErrEmptyQuery},
		{input: "::INFO_VIN", wantErr: ErrInvalidQuery},
		{input: "VehicleProperty::", wantErr: ErrInvalidQuery},
		{input: "a b", wantErr: ErrInvalidQuery},
		{input: "0xZZ", wantErr: ErrInvalidNumber},
		{input: "0x1ffffffff", wantErr: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuery(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseQuery(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.input, err)
			}
			if got.Tag != tt.want.Tag || got.Name != tt.want.Name || got.ID != tt.want.ID || got.HasID != tt.want.HasID {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryResolve(t *testing.T) {
	reg := testRegistry(t)

	for _, input := range []string{"INFO_VIN", "VehicleProperty::INFO_VIN", "0x11100100"} {
		q, err := ParseQuery(input)
		if err != nil {
			t.Fatalf("ParseQuery(%q) error = %v", input, err)
		}
		id, err := q.Resolve(reg)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", input, err)
		}
		if id != 0x11100100 {
			t.Errorf("Resolve(%q) = 0x%x, want 0x11100100", input, id)
		}
	}

	q, _ := ParseQuery("ambient_light_mode")
	if id, err := q.Resolve(reg); err != nil || id != 0x21402001 {
		t.Errorf("Resolve(ambient_light_mode) = 0x%x, %v", id, err)
	}

	q, _ = ParseQuery("NOT_A_PROPERTY")
	if _, err := q.Resolve(reg); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Resolve(NOT_A_PROPERTY) error = %v, want ErrUnknownName", err)
	}
}

func TestFormatDeclaration(t *testing.T) {
	f := NewFormatter(testRegistry(t))
	table := testTable()

	got := f.FormatDeclaration(table[0x15400500])
	want := strings.Join([]string{
		"VehicleProperty::HVAC_FAN_SPEED (0x15400500)",
		"  type: SYSTEM SEAT INT32",
		"  access: READ_WRITE",
		"  changeMode: ON_CHANGE",
		"  default: int32Values=[3]",
		"  areas:",
		"    HVAC_LEFT (0x00000031) int32 1..7",
		"      default: int32Values=[2]",
		"    HVAC_RIGHT (0x00000044) int32 1..7",
		"",
	}, "\n")
	if got != want {
		t.Errorf("FormatDeclaration() =\n%s\nwant\n%s", got, want)
	}

	got = f.FormatDeclaration(table[0x21402001])
	for _, sub := range []string{
		"VendorVehicleProperty::AMBIENT_LIGHT_MODE (0x21402001)",
		"type: VENDOR GLOBAL INT32",
		"sampleRate: 0.5..10 Hz",
		"default: floatValues=[0.25 1]",
		"GLOBAL (0x00000000) enums [0 1]",
	} {
		if !strings.Contains(got, sub) {
			t.Errorf("FormatDeclaration() missing %q:\n%s", sub, got)
		}
	}
}

func TestFormatterWithoutNames(t *testing.T) {
	f := NewFormatter(nil)
	f.ShowMetadata = false

	got := f.FormatDeclaration(testTable()[0x11100100])
	want := "0x11100100\n  access: READ\n  changeMode: STATIC\n  configString: \"vin\"\n  default: stringValue=\"1GCARVIN123456789\"\n"
	if got != want {
		t.Errorf("FormatDeclaration() = %q, want %q", got, want)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if got := NewFormatter(nil).FormatTable(nil); got != "(no properties)\n" {
		t.Errorf("FormatTable(nil) = %q", got)
	}
}

func TestFormatValues(t *testing.T) {
	tests := []struct {
		v    vehicle.RawPropValues
		want string
	}{
		{vehicle.RawPropValues{}, "(none)"},
		{vehicle.RawPropValues{Int64Values: []int64{1 << 40}}, "int64Values=[1099511627776]"},
		{vehicle.RawPropValues{Int32Values: []int32{1}, StringValue: "x"}, `int32Values=[1] stringValue="x"`},
	}
	for _, tt := range tests {
		if got := FormatValues(tt.v); got != tt.want {
			t.Errorf("FormatValues(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDiff(t *testing.T) {
	f := NewFormatter(testRegistry(t))
	from := testTable()

	same, err := f.Diff("a", "b", from, testTable())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if same != "" {
		t.Errorf("Diff() of equal tables = %q, want empty", same)
	}

	to := testTable()
	vin := to[0x11100100]
	vin.Config.ConfigString = "changed"
	to[0x11100100] = vin

	out, err := f.Diff("old.json", "new.json", from, to)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	for _, sub := range []string{"--- old.json", "+++ new.json", `-  configString: "vin"`, `+  configString: "changed"`} {
		if !strings.Contains(out, sub) {
			t.Errorf("Diff() missing %q:\n%s", sub, out)
		}
	}
}

func TestCompare(t *testing.T) {
	f := NewFormatter(testRegistry(t))
	from := testTable()
	to := testTable()

	delete(to, 0x11100100)
	fan := to[0x15400500]
	fan.Config.Access = vehicle.AccessRead
	to[0x15400500] = fan
	to[0x11600207] = vehicle.ConfigDeclaration{Config: vehicle.PropertyConfig{Prop: 0x11600207}}

	c := f.Compare(from, to)
	if len(c.Removed) != 1 || c.Removed[0] != 0x11100100 {
		t.Errorf("Removed = %v", c.Removed)
	}
	if len(c.Modified) != 1 || c.Modified[0] != 0x15400500 {
		t.Errorf("Modified = %v", c.Modified)
	}
	if len(c.Added) != 1 || c.Added[0] != 0x11600207 {
		t.Errorf("Added = %v", c.Added)
	}
	if c.Empty() {
		t.Error("Empty() = true, want false")
	}
	if !f.Compare(from, testTable()).Empty() {
		t.Error("Compare of equal tables is not empty")
	}
}

func TestInspector(t *testing.T) {
	insp := NewInspector(testTable(), testRegistry(t))

	list := insp.List()
	if len(list) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(list))
	}
	if list[0].Name != "VehicleProperty::INFO_VIN" || list[1].Areas != 2 {
		t.Errorf("List() = %+v", list)
	}
	if list[2].Group != vehicle.GroupVendor {
		t.Errorf("List()[2].Group = %v, want VENDOR", list[2].Group)
	}

	out := insp.FormatList()
	if strings.Count(out, "\n") != 3 || !strings.Contains(out, "0x21402001") {
		t.Errorf("FormatList() =\n%s", out)
	}

	shown, err := insp.Show("info_vin")
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if !strings.HasPrefix(shown, "VehicleProperty::INFO_VIN (0x11100100)\n") {
		t.Errorf("Show() = %q", shown)
	}

	if _, err := insp.Show("INFO_MAKE"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("Show(INFO_MAKE) error = %v, want ErrPropertyNotFound", err)
	}

	v, err := insp.ResolveConstant("Constants::HVAC_ALL")
	if err != nil || v != 0x75 {
		t.Errorf("ResolveConstant() = 0x%x, %v", v, err)
	}
	if _, err := insp.ResolveConstant("HVAC_ALL"); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("ResolveConstant(HVAC_ALL) error = %v, want ErrInvalidQuery", err)
	}

	summary := insp.Summary()
	for _, sub := range []string{"properties: 3", "groups: SYSTEM=2 VENDOR=1", "types: INT32=2 STRING=1"} {
		if !strings.Contains(summary, sub) {
			t.Errorf("Summary() missing %q:\n%s", sub, summary)
		}
	}
}
