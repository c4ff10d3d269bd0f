package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/tinyrange/jni"
	"github.com/tinyrange/jni/jvmti"
	"golang.org/x/term"
)

type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, " ") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

func run() error {
	configPath := flag.String("config", "", "YAML launch config")
	javaHome := flag.String("java-home", "", "Java installation to load the JVM from (default $JAVA_HOME)")
	library := flag.String("lib", "", "path to the JVM shared library, overrides -java-home")
	version := flag.String("version", "", "JNI version to request (default 1.8)")
	class := flag.String("class", "", "class containing the static method to call, e.g. java/lang/System")
	method := flag.String("method", "", "static method to call")
	sig := flag.String("sig", "", "method signature, e.g. ()J")
	caps := flag.Bool("caps", false, "print the JVMTI capabilities the JVM can provide")
	debug := flag.Bool("debug", false, "enable debug logging")
	var options stringList
	flag.Var(&options, "opt", "JVM option, may be repeated (e.g. -opt -Xmx64m)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `jnicall - start a JVM in-process and call a static method

USAGE:
  jnicall [flags] [args...]

Arguments are converted according to -sig. Primitive types and
java.lang.String parameters are supported.

EXAMPLES:
  jnicall -class java/lang/System -method nanoTime -sig '()J'
  jnicall -class java/lang/Long -method toHexString -sig '(J)Ljava/lang/String;' 255
  jnicall -caps
  jnicall -config launch.yml

FLAGS:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
	}

	var cfg LaunchConfig
	if *configPath != "" {
		var err error
		cfg, err = LoadLaunchConfig(*configPath)
		if err != nil {
			return err
		}
	}

	// Flags override the config file.
	if *javaHome != "" {
		cfg.JavaHome = *javaHome
	}
	if *library != "" {
		cfg.Library = *library
	}
	if *version != "" {
		cfg.Version = *version
	}
	cfg.Options = append(cfg.Options, options...)
	if *class != "" || *method != "" {
		cfg.Call = &CallConfig{Class: *class, Method: *method, Signature: *sig, Args: flag.Args()}
	}
	if cfg.Call == nil && !*caps && len(cfg.Capabilities) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ver, err := ParseVersion(cfg.Version)
	if err != nil {
		return err
	}

	if err := load(cfg); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	vm, env, err := jni.CreateJavaVMWithOptions(ver, cfg.Options, cfg.IgnoreUnrecognized)
	if err != nil {
		return fmt.Errorf("create JVM: %w", err)
	}
	slog.Debug("JVM created", "version", env.GetVersion())
	defer func() {
		if err := vm.DestroyJavaVM(); err != nil {
			slog.Debug("DestroyJavaVM failed", "error", err)
		}
	}()

	if *caps || len(cfg.Capabilities) > 0 {
		if err := capabilities(vm, cfg.Capabilities, *caps); err != nil {
			return err
		}
	}

	if cfg.Call != nil {
		out, err := invoke(env, cfg.Call)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func load(cfg LaunchConfig) error {
	switch {
	case cfg.Library != "":
		return jni.LoadLibrary(cfg.Library)
	case cfg.JavaHome != "":
		return jni.LoadJavaHomeFolder(cfg.JavaHome)
	default:
		return jni.LoadJavaHome()
	}
}

func invoke(env jni.Env, call *CallConfig) (string, error) {
	if call.Class == "" || call.Method == "" || call.Signature == "" {
		return "", fmt.Errorf("a call needs a class, a method and a signature")
	}
	sig, err := parseMethodSig(call.Signature)
	if err != nil {
		return "", err
	}

	class := env.FindClass(call.Class)
	if err := takeException(env); err != nil {
		return "", fmt.Errorf("find class %s: %w", call.Class, err)
	}
	defer env.DeleteLocalRef(class)

	method := env.GetStaticMethodID(class, call.Method, call.Signature)
	if err := takeException(env); err != nil {
		return "", fmt.Errorf("find method %s.%s%s: %w", call.Class, call.Method, call.Signature, err)
	}

	args, err := buildArgs(env, sig, call.Args)
	if err != nil {
		return "", err
	}
	slog.Debug("calling", "class", call.Class, "method", call.Method, "sig", call.Signature, "args", len(args))
	return callStatic(env, class, method, sig, args)
}

// capabilities prints what the JVM can provide and requests want.
func capabilities(vm jni.VM, want []string, list bool) error {
	tienv, err := jvmti.GetEnv(vm, jvmti.Version1_2)
	if err != nil {
		return err
	}
	defer tienv.DisposeEnvironment()

	potential, err := tienv.GetPotentialCapabilities()
	if err != nil {
		return fmt.Errorf("GetPotentialCapabilities: %w", err)
	}
	if list {
		for _, name := range potential.Names() {
			fmt.Println(name)
		}
	}
	if len(want) == 0 {
		return nil
	}

	var req jvmti.Capabilities
	for _, name := range want {
		c, ok := jvmti.ParseCapability(name)
		if !ok {
			return fmt.Errorf("unknown capability %q", name)
		}
		req.Set(c)
	}
	granted, err := tienv.AddPotentialCapabilities(req)
	if err != nil {
		return fmt.Errorf("AddCapabilities: %w", err)
	}
	if missing := req.Without(granted); !missing.IsZero() {
		slog.Warn("capabilities not available", "missing", missing.String())
	}
	slog.Info("capabilities added", "granted", granted.String())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jnicall: %v\n", err)
		os.Exit(1)
	}
}
