package jvmti

// JVMTI function numbers from jvmti.h. The function
// table is 1-based: function n lives at index n-1 of jvmtiInterface_1_.
const (
	fnSetEventNotificationMode     = 2
	fnGetAllModules                = 3
	fnGetAllThreads                = 4
	fnGetThreadInfo                = 9
	fnRunAgentThread               = 12
	fnGetFrameCount                = 16
	fnGetCurrentThread             = 18
	fnCreateRawMonitor             = 31
	fnDestroyRawMonitor            = 32
	fnRawMonitorEnter              = 33
	fnRawMonitorExit               = 34
	fnRawMonitorWait               = 35
	fnRawMonitorNotify             = 36
	fnRawMonitorNotifyAll          = 37
	fnAllocate                     = 46
	fnDeallocate                   = 47
	fnGetClassSignature            = 48
	fnGetMethodName                = 64
	fnGetMethodDeclaringClass      = 65
	fnGetBytecodes                 = 75
	fnGetLoadedClasses             = 78
	fnRedefineClasses              = 87
	fnGetVersionNumber             = 88
	fnGetCapabilities              = 89
	fnGetStackTrace                = 104
	fnGetTag                       = 106
	fnSetTag                       = 107
	fnSetJNIFunctionTable          = 120
	fnGetJNIFunctionTable          = 121
	fnSetEventCallbacks            = 122
	fnGenerateEvents               = 123
	fnDisposeEnvironment           = 127
	fnGetErrorName                 = 128
	fnGetSystemProperties          = 130
	fnGetSystemProperty            = 131
	fnSetSystemProperty            = 132
	fnGetPhase                     = 133
	fnGetCurrentThreadCpuTimerInfo = 134
	fnGetCurrentThreadCpuTime      = 135
	fnGetTimerInfo                 = 138
	fnGetTime                      = 139
	fnGetPotentialCapabilities     = 140
	fnAddCapabilities              = 142
	fnRelinquishCapabilities       = 143
	fnGetAvailableProcessors       = 144
	fnGetEnvironmentLocalStorage   = 147
	fnSetEnvironmentLocalStorage   = 148
	fnAddToSystemClassLoaderSearch = 151
	fnRetransformClasses           = 152
	fnGetObjectSize                = 154
)
