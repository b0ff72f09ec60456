package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestIsAbsFor(t *testing.T) {
	tests := []struct {
		goos string
		path string
		want bool
	}{
		{"linux", "", false},
		{"linux", "/usr/bin/app", true},
		{"darwin", "/Applications/App.app", true},
		{"linux", `C:\n.exe`, false},
		{"darwin", `\\server\share\app`, false},
		{"linux", "relative/app", false},
		{"linux", "./app", false},
		{"windows", "", false},
		{"windows", `C:\Program Files\App\app.exe`, true},
		{"windows", "c:/tools/app.exe", true},
		{"windows", `\\server\share\app.exe`, true},
		{"windows", "/usr/bin/app", false},
		{"windows", `app.exe`, false},
		{"windows", "C:app.exe", false},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.path, func(t *testing.T) {
			if got := IsAbsFor(tt.goos, tt.path); got != tt.want {
				t.Errorf("IsAbsFor(%q, %q) = %v, want %v", tt.goos, tt.path, got, tt.want)
			}
		})
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\Program Files\App\app.exe`, `C:\Program Files\App`},
		{`C:\app.exe`, `C:\`},
		{"/opt/app/bin/app", "/opt/app/bin"},
		{"/app", "/"},
		{"app", "."},
	}
	for _, tt := range tests {
		if got := ParentDir(tt.path); got != tt.want {
			t.Errorf("ParentDir(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestStemName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\App\My App.exe`, "My App"},
		{"/Applications/Foo.app", "Foo"},
		{"/usr/bin/tool", "tool"},
		{"/usr/bin/.hidden", ".hidden"},
	}
	for _, tt := range tests {
		if got := StemName(tt.path); got != tt.want {
			t.Errorf("StemName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAppBundle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Applications/Foo.app/Contents/MacOS/foo", "/Applications/Foo.app"},
		{"/Applications/Foo.APP/Contents/MacOS/foo", "/Applications/Foo.APP"},
		{"/Applications/Foo.app", "/Applications/Foo.app"},
		{"/usr/local/bin/foo", "/usr/local/bin/foo"},
	}
	for _, tt := range tests {
		if got := AppBundle(tt.path); got != tt.want {
			t.Errorf("AppBundle(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAutostartDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(AutostartDirEnv, dir)

	for _, allUsers := range []bool{false, true} {
		got, err := AutostartDir(allUsers)
		if err != nil {
			t.Fatalf("AutostartDir(%v) failed: %v", allUsers, err)
		}
		if got != dir {
			t.Errorf("AutostartDir(%v) = %q, want %q", allUsers, got, dir)
		}
	}
}

func TestAutostartDirDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory comes from USERPROFILE on Windows")
	}
	t.Setenv(AutostartDirEnv, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := AutostartDir(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".config", "autostart"); got != want {
		t.Errorf("AutostartDir(current user) = %q, want %q", got, want)
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	got, err = AutostartDir(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, "autostart"); got != want {
		t.Errorf("AutostartDir(XDG) = %q, want %q", got, want)
	}

	got, err = AutostartDir(true)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(string(filepath.Separator), "etc", "xdg", "autostart"); got != want {
		t.Errorf("AutostartDir(all users) = %q, want %q", got, want)
	}
}

func TestStartupDirRequiresEnv(t *testing.T) {
	t.Setenv(StartupDirEnv, "")
	t.Setenv("APPDATA", "")
	if _, err := StartupDir(false); err == nil {
		t.Error("expected error when APPDATA is not set")
	}

	appData := t.TempDir()
	t.Setenv("APPDATA", appData)
	got, err := StartupDir(false)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
	if got != want {
		t.Errorf("StartupDir = %q, want %q", got, want)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"windows", Windows},
		{"linux", Linux},
		{"darwin", MacOS},
		{"freebsd", Unknown},
		{"js", Unknown},
	}
	for _, tt := range tests {
		got := Detect(tt.goos)
		if got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.goos, got, tt.want)
		}
		if got.Supported() != (tt.want != Unknown) {
			t.Errorf("Detect(%q).Supported() = %v", tt.goos, got.Supported())
		}
	}
}
