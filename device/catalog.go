package device

// Known models. The zero Model is invalid.
const (
	_ Model = iota

	IPodTouch5
	IPodTouch6
	IPodTouch7

	IPhone4
	IPhone4s
	IPhone5
	IPhone5c
	IPhone5s
	IPhone6
	IPhone6Plus
	IPhone6s
	IPhone6sPlus
	IPhone7
	IPhone7Plus
	IPhoneSE
	IPhone8
	IPhone8Plus
	IPhoneX
	IPhoneXS
	IPhoneXSMax
	IPhoneXR
	IPhone11
	IPhone11Pro
	IPhone11ProMax
	IPhoneSE2
	IPhone12
	IPhone12Mini
	IPhone12Pro
	IPhone12ProMax
	IPhone13
	IPhone13Mini
	IPhone13Pro
	IPhone13ProMax
	IPhoneSE3
	IPhone14
	IPhone14Plus
	IPhone14Pro
	IPhone14ProMax
	IPhone15
	IPhone15Plus
	IPhone15Pro
	IPhone15ProMax
	IPhone16
	IPhone16Plus
	IPhone16Pro
	IPhone16ProMax
	IPhone16e

	IPad2
	IPad3
	IPad4
	IPadAir
	IPadAir2
	IPad5
	IPad6
	IPadAir3
	IPad7
	IPad8
	IPad9
	IPad10
	IPadAir4
	IPadAir5
	IPadAir11M2
	IPadAir13M2
	IPadMini
	IPadMini2
	IPadMini3
	IPadMini4
	IPadMini5
	IPadMini6
	IPadMiniA17Pro
	IPadPro9Inch
	IPadPro12Inch
	IPadPro12Inch2
	IPadPro10Inch
	IPadPro11Inch
	IPadPro12Inch3
	IPadPro11Inch2
	IPadPro12Inch4
	IPadPro11Inch3
	IPadPro12Inch5
	IPadPro11Inch4
	IPadPro12Inch6
	IPadPro11M4
	IPadPro13M4

	HomePod
	HomePodMini
	HomePod2

	AppleTVHD
	AppleTV4K
	AppleTV4K2
	AppleTV4K3

	AppleWatchSeries0_38mm
	AppleWatchSeries0_42mm
	AppleWatchSeries1_38mm
	AppleWatchSeries1_42mm
	AppleWatchSeries2_38mm
	AppleWatchSeries2_42mm
	AppleWatchSeries3_38mm
	AppleWatchSeries3_42mm
	AppleWatchSeries4_40mm
	AppleWatchSeries4_44mm
	AppleWatchSeries5_40mm
	AppleWatchSeries5_44mm
	AppleWatchSeries6_40mm
	AppleWatchSeries6_44mm
	AppleWatchSE_40mm
	AppleWatchSE_44mm
	AppleWatchSeries7_41mm
	AppleWatchSeries7_45mm
	AppleWatchSeries8_41mm
	AppleWatchSeries8_45mm
	AppleWatchSE2_40mm
	AppleWatchSE2_44mm
	AppleWatchUltra
	AppleWatchSeries9_41mm
	AppleWatchSeries9_45mm
	AppleWatchUltra2
	AppleWatchSeries10_42mm
	AppleWatchSeries10_46mm

	AppleVisionPro
)

var (
	camWide       = []CameraType{CameraWide}
	camWideTele   = []CameraType{CameraWide, CameraTelephoto}
	camWideUltra  = []CameraType{CameraWide, CameraUltraWide}
	camTriple     = []CameraType{CameraWide, CameraTelephoto, CameraUltraWide}
	ratio9x16     = Ratio{Width: 9, Height: 16}
	ratio9x19_5   = Ratio{Width: 9, Height: 19.5}
	ratio3x4      = Ratio{Width: 3, Height: 4}
	ratio41x59    = Ratio{Width: 41, Height: 59}
	ratioPro11    = Ratio{Width: 139, Height: 199}
	ratioMini6    = Ratio{Width: 744, Height: 1133}
	ratioWatch4x5 = Ratio{Width: 4, Height: 5}
)

const (
	phoneFaceID  = featFaceID | featRoundedCorners | featWirelessCharging
	notched      = phoneFaceID | featSensorHousing
	island       = phoneFaceID | featDynamicIsland
	padProModern = featFaceID | featRoundedCorners | featUSBC | featPro
)

// models is the catalog, indexed by Model.
var models = [...]modelSpec{
	IPodTouch5: {name: "iPod touch (5th generation)", identifiers: []string{"iPod5,1"}, family: FamilyPod, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA5, cameras: camWide},
	IPodTouch6: {name: "iPod touch (6th generation)", identifiers: []string{"iPod7,1"}, family: FamilyPod, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA8, cameras: camWide},
	IPodTouch7: {name: "iPod touch (7th generation)", identifiers: []string{"iPod9,1"}, family: FamilyPod, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA10Fusion, cameras: camWide},

	IPhone4:        {name: "iPhone 4", identifiers: []string{"iPhone3,1", "iPhone3,2", "iPhone3,3"}, family: FamilyPhone, diagonal: 3.5, ratio: Ratio{Width: 2, Height: 3}, ppi: 326, cpu: CPUA4, cameras: camWide},
	IPhone4s:       {name: "iPhone 4s", identifiers: []string{"iPhone4,1"}, family: FamilyPhone, diagonal: 3.5, ratio: Ratio{Width: 2, Height: 3}, ppi: 326, cpu: CPUA5, cameras: camWide},
	IPhone5:        {name: "iPhone 5", identifiers: []string{"iPhone5,1", "iPhone5,2"}, family: FamilyPhone, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA6, cameras: camWide},
	IPhone5c:       {name: "iPhone 5c", identifiers: []string{"iPhone5,3", "iPhone5,4"}, family: FamilyPhone, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA6, cameras: camWide},
	IPhone5s:       {name: "iPhone 5s", identifiers: []string{"iPhone6,1", "iPhone6,2"}, family: FamilyPhone, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA7, cameras: camWide, features: featTouchID},
	IPhone6:        {name: "iPhone 6", identifiers: []string{"iPhone7,2"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA8, cameras: camWide, features: featTouchID},
	IPhone6Plus:    {name: "iPhone 6 Plus", identifiers: []string{"iPhone7,1"}, family: FamilyPhone, diagonal: 5.5, ratio: ratio9x16, ppi: 401, cpu: CPUA8, cameras: camWide, features: featTouchID | featPlusSized},
	IPhone6s:       {name: "iPhone 6s", identifiers: []string{"iPhone8,1"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA9, cameras: camWide, features: featTouchID | feat3DTouch},
	IPhone6sPlus:   {name: "iPhone 6s Plus", identifiers: []string{"iPhone8,2"}, family: FamilyPhone, diagonal: 5.5, ratio: ratio9x16, ppi: 401, cpu: CPUA9, cameras: camWide, features: featTouchID | feat3DTouch | featPlusSized},
	IPhone7:        {name: "iPhone 7", identifiers: []string{"iPhone9,1", "iPhone9,3"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA10Fusion, cameras: camWide, features: featTouchID | feat3DTouch},
	IPhone7Plus:    {name: "iPhone 7 Plus", identifiers: []string{"iPhone9,2", "iPhone9,4"}, family: FamilyPhone, diagonal: 5.5, ratio: ratio9x16, ppi: 401, cpu: CPUA10Fusion, cameras: camWideTele, features: featTouchID | feat3DTouch | featPlusSized},
	IPhoneSE:       {name: "iPhone SE", identifiers: []string{"iPhone8,4"}, family: FamilyPhone, diagonal: 4, ratio: ratio9x16, ppi: 326, cpu: CPUA9, cameras: camWide, features: featTouchID},
	IPhone8:        {name: "iPhone 8", identifiers: []string{"iPhone10,1", "iPhone10,4"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA11Bionic, cameras: camWide, features: featTouchID | feat3DTouch | featWirelessCharging},
	IPhone8Plus:    {name: "iPhone 8 Plus", identifiers: []string{"iPhone10,2", "iPhone10,5"}, family: FamilyPhone, diagonal: 5.5, ratio: ratio9x16, ppi: 401, cpu: CPUA11Bionic, cameras: camWideTele, features: featTouchID | feat3DTouch | featWirelessCharging | featPlusSized},
	IPhoneX:        {name: "iPhone X", identifiers: []string{"iPhone10,3", "iPhone10,6"}, family: FamilyPhone, diagonal: 5.8, ratio: ratio9x19_5, ppi: 458, cpu: CPUA11Bionic, cameras: camWideTele, features: notched | feat3DTouch},
	IPhoneXS:       {name: "iPhone XS", identifiers: []string{"iPhone11,2"}, family: FamilyPhone, diagonal: 5.8, ratio: ratio9x19_5, ppi: 458, cpu: CPUA12Bionic, cameras: camWideTele, features: notched | feat3DTouch},
	IPhoneXSMax:    {name: "iPhone XS Max", identifiers: []string{"iPhone11,4", "iPhone11,6"}, family: FamilyPhone, diagonal: 6.5, ratio: ratio9x19_5, ppi: 458, cpu: CPUA12Bionic, cameras: camWideTele, features: notched | feat3DTouch},
	IPhoneXR:       {name: "iPhone XR", identifiers: []string{"iPhone11,8"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 326, cpu: CPUA12Bionic, cameras: camWide, features: notched},
	IPhone11:       {name: "iPhone 11", identifiers: []string{"iPhone12,1"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 326, cpu: CPUA13Bionic, cameras: camWideUltra, features: notched},
	IPhone11Pro:    {name: "iPhone 11 Pro", identifiers: []string{"iPhone12,3"}, family: FamilyPhone, diagonal: 5.8, ratio: ratio9x19_5, ppi: 458, cpu: CPUA13Bionic, cameras: camTriple, features: notched},
	IPhone11ProMax: {name: "iPhone 11 Pro Max", identifiers: []string{"iPhone12,5"}, family: FamilyPhone, diagonal: 6.5, ratio: ratio9x19_5, ppi: 458, cpu: CPUA13Bionic, cameras: camTriple, features: notched},
	IPhoneSE2:      {name: "iPhone SE (2nd generation)", identifiers: []string{"iPhone12,8"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA13Bionic, cameras: camWide, features: featTouchID | featWirelessCharging},
	IPhone12:       {name: "iPhone 12", identifiers: []string{"iPhone13,2"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA14Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone12Mini:   {name: "iPhone 12 mini", identifiers: []string{"iPhone13,1"}, family: FamilyPhone, diagonal: 5.4, ratio: ratio9x19_5, ppi: 476, cpu: CPUA14Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone12Pro:    {name: "iPhone 12 Pro", identifiers: []string{"iPhone13,3"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA14Bionic, cameras: camTriple, features: notched | feat5G | featLidar},
	IPhone12ProMax: {name: "iPhone 12 Pro Max", identifiers: []string{"iPhone13,4"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 458, cpu: CPUA14Bionic, cameras: camTriple, features: notched | feat5G | featLidar},
	IPhone13:       {name: "iPhone 13", identifiers: []string{"iPhone14,5"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA15Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone13Mini:   {name: "iPhone 13 mini", identifiers: []string{"iPhone14,4"}, family: FamilyPhone, diagonal: 5.4, ratio: ratio9x19_5, ppi: 476, cpu: CPUA15Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone13Pro:    {name: "iPhone 13 Pro", identifiers: []string{"iPhone14,2"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA15Bionic, cameras: camTriple, features: notched | feat5G | featLidar},
	IPhone13ProMax: {name: "iPhone 13 Pro Max", identifiers: []string{"iPhone14,3"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 458, cpu: CPUA15Bionic, cameras: camTriple, features: notched | feat5G | featLidar},
	IPhoneSE3:      {name: "iPhone SE (3rd generation)", identifiers: []string{"iPhone14,6"}, family: FamilyPhone, diagonal: 4.7, ratio: ratio9x16, ppi: 326, cpu: CPUA15Bionic, cameras: camWide, features: featTouchID | featWirelessCharging | feat5G},
	IPhone14:       {name: "iPhone 14", identifiers: []string{"iPhone14,7"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA15Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone14Plus:   {name: "iPhone 14 Plus", identifiers: []string{"iPhone14,8"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 458, cpu: CPUA15Bionic, cameras: camWideUltra, features: notched | feat5G},
	IPhone14Pro:    {name: "iPhone 14 Pro", identifiers: []string{"iPhone15,2"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA16Bionic, cameras: camTriple, features: island | feat5G | featLidar},
	IPhone14ProMax: {name: "iPhone 14 Pro Max", identifiers: []string{"iPhone15,3"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 460, cpu: CPUA16Bionic, cameras: camTriple, features: island | feat5G | featLidar},
	IPhone15:       {name: "iPhone 15", identifiers: []string{"iPhone15,4"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA16Bionic, cameras: camWideUltra, features: island | feat5G | featUSBC},
	IPhone15Plus:   {name: "iPhone 15 Plus", identifiers: []string{"iPhone15,5"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 460, cpu: CPUA16Bionic, cameras: camWideUltra, features: island | feat5G | featUSBC},
	IPhone15Pro:    {name: "iPhone 15 Pro", identifiers: []string{"iPhone16,1"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA17Pro, cameras: camTriple, features: island | feat5G | featLidar | featUSBC},
	IPhone15ProMax: {name: "iPhone 15 Pro Max", identifiers: []string{"iPhone16,2"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 460, cpu: CPUA17Pro, cameras: camTriple, features: island | feat5G | featLidar | featUSBC},
	IPhone16:       {name: "iPhone 16", identifiers: []string{"iPhone17,3"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA18, cameras: camWideUltra, features: island | feat5G | featUSBC},
	IPhone16Plus:   {name: "iPhone 16 Plus", identifiers: []string{"iPhone17,4"}, family: FamilyPhone, diagonal: 6.7, ratio: ratio9x19_5, ppi: 460, cpu: CPUA18, cameras: camWideUltra, features: island | feat5G | featUSBC},
	IPhone16Pro:    {name: "iPhone 16 Pro", identifiers: []string{"iPhone17,1"}, family: FamilyPhone, diagonal: 6.3, ratio: ratio9x19_5, ppi: 460, cpu: CPUA18Pro, cameras: camTriple, features: island | feat5G | featLidar | featUSBC},
	IPhone16ProMax: {name: "iPhone 16 Pro Max", identifiers: []string{"iPhone17,2"}, family: FamilyPhone, diagonal: 6.9, ratio: ratio9x19_5, ppi: 460, cpu: CPUA18Pro, cameras: camTriple, features: island | feat5G | featLidar | featUSBC},
	IPhone16e:      {name: "iPhone 16e", identifiers: []string{"iPhone17,5"}, family: FamilyPhone, diagonal: 6.1, ratio: ratio9x19_5, ppi: 460, cpu: CPUA18, cameras: camWide, features: notched | feat5G | featUSBC},

	IPad2:          {name: "iPad 2", identifiers: []string{"iPad2,1", "iPad2,2", "iPad2,3", "iPad2,4"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 132, cpu: CPUA5, cameras: camWide},
	IPad3:          {name: "iPad (3rd generation)", identifiers: []string{"iPad3,1", "iPad3,2", "iPad3,3"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA5X, cameras: camWide},
	IPad4:          {name: "iPad (4th generation)", identifiers: []string{"iPad3,4", "iPad3,5", "iPad3,6"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA6X, cameras: camWide},
	IPadAir:        {name: "iPad Air", identifiers: []string{"iPad4,1", "iPad4,2", "iPad4,3"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA7, cameras: camWide},
	IPadAir2:       {name: "iPad Air 2", identifiers: []string{"iPad5,3", "iPad5,4"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA8X, cameras: camWide, features: featTouchID},
	IPad5:          {name: "iPad (5th generation)", identifiers: []string{"iPad6,11", "iPad6,12"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA9, cameras: camWide, features: featTouchID},
	IPad6:          {name: "iPad (6th generation)", identifiers: []string{"iPad7,5", "iPad7,6"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA10Fusion, cameras: camWide, features: featTouchID | featPencil},
	IPadAir3:       {name: "iPad Air (3rd generation)", identifiers: []string{"iPad11,3", "iPad11,4"}, family: FamilyPad, diagonal: 10.5, ratio: ratio3x4, ppi: 264, cpu: CPUA12Bionic, cameras: camWide, features: featTouchID | featPencil | featSmartKeyboard},
	IPad7:          {name: "iPad (7th generation)", identifiers: []string{"iPad7,11", "iPad7,12"}, family: FamilyPad, diagonal: 10.2, ratio: ratio3x4, ppi: 264, cpu: CPUA10Fusion, cameras: camWide, features: featTouchID | featPencil | featSmartKeyboard},
	IPad8:          {name: "iPad (8th generation)", identifiers: []string{"iPad11,6", "iPad11,7"}, family: FamilyPad, diagonal: 10.2, ratio: ratio3x4, ppi: 264, cpu: CPUA12Bionic, cameras: camWide, features: featTouchID | featPencil | featSmartKeyboard},
	IPad9:          {name: "iPad (9th generation)", identifiers: []string{"iPad12,1", "iPad12,2"}, family: FamilyPad, diagonal: 10.2, ratio: ratio3x4, ppi: 264, cpu: CPUA13Bionic, cameras: camWide, features: featTouchID | featPencil | featSmartKeyboard},
	IPad10:         {name: "iPad (10th generation)", identifiers: []string{"iPad13,18", "iPad13,19"}, family: FamilyPad, diagonal: 10.9, ratio: ratio41x59, ppi: 264, cpu: CPUA14Bionic, cameras: camWide, features: featTouchID | featRoundedCorners | feat5G | featPencil | featUSBC},
	IPadAir4:       {name: "iPad Air (4th generation)", identifiers: []string{"iPad13,1", "iPad13,2"}, family: FamilyPad, diagonal: 10.9, ratio: ratio41x59, ppi: 264, cpu: CPUA14Bionic, cameras: camWide, features: featTouchID | featRoundedCorners | featPencil2 | featUSBC},
	IPadAir5:       {name: "iPad Air (5th generation)", identifiers: []string{"iPad13,16", "iPad13,17"}, family: FamilyPad, diagonal: 10.9, ratio: ratio41x59, ppi: 264, cpu: CPUM1, cameras: camWide, features: featTouchID | featRoundedCorners | feat5G | featPencil2 | featUSBC},
	IPadAir11M2:    {name: "iPad Air 11-inch (M2)", identifiers: []string{"iPad14,8", "iPad14,9"}, family: FamilyPad, diagonal: 11, ratio: ratio41x59, ppi: 264, cpu: CPUM2, cameras: camWide, features: featTouchID | featRoundedCorners | feat5G | featPencilPro | featUSBC},
	IPadAir13M2:    {name: "iPad Air 13-inch (M2)", identifiers: []string{"iPad14,10", "iPad14,11"}, family: FamilyPad, diagonal: 13, ratio: ratio3x4, ppi: 264, cpu: CPUM2, cameras: camWide, features: featTouchID | featRoundedCorners | feat5G | featPencilPro | featUSBC},
	IPadMini:       {name: "iPad mini", identifiers: []string{"iPad2,5", "iPad2,6", "iPad2,7"}, family: FamilyPad, diagonal: 7.9, ratio: ratio3x4, ppi: 163, cpu: CPUA5, cameras: camWide, features: featMini},
	IPadMini2:      {name: "iPad mini 2", identifiers: []string{"iPad4,4", "iPad4,5", "iPad4,6"}, family: FamilyPad, diagonal: 7.9, ratio: ratio3x4, ppi: 326, cpu: CPUA7, cameras: camWide, features: featMini},
	IPadMini3:      {name: "iPad mini 3", identifiers: []string{"iPad4,7", "iPad4,8", "iPad4,9"}, family: FamilyPad, diagonal: 7.9, ratio: ratio3x4, ppi: 326, cpu: CPUA7, cameras: camWide, features: featMini | featTouchID},
	IPadMini4:      {name: "iPad mini 4", identifiers: []string{"iPad5,1", "iPad5,2"}, family: FamilyPad, diagonal: 7.9, ratio: ratio3x4, ppi: 326, cpu: CPUA8, cameras: camWide, features: featMini | featTouchID},
	IPadMini5:      {name: "iPad mini (5th generation)", identifiers: []string{"iPad11,1", "iPad11,2"}, family: FamilyPad, diagonal: 7.9, ratio: ratio3x4, ppi: 326, cpu: CPUA12Bionic, cameras: camWide, features: featMini | featTouchID | featPencil},
	IPadMini6:      {name: "iPad mini (6th generation)", identifiers: []string{"iPad14,1", "iPad14,2"}, family: FamilyPad, diagonal: 8.3, ratio: ratioMini6, ppi: 326, cpu: CPUA15Bionic, cameras: camWide, features: featMini | featTouchID | featRoundedCorners | feat5G | featPencil2 | featUSBC},
	IPadMiniA17Pro: {name: "iPad mini (A17 Pro)", identifiers: []string{"iPad16,1", "iPad16,2"}, family: FamilyPad, diagonal: 8.3, ratio: ratioMini6, ppi: 326, cpu: CPUA17Pro, cameras: camWide, features: featMini | featTouchID | featRoundedCorners | feat5G | featPencilPro | featUSBC},
	IPadPro9Inch:   {name: "iPad Pro (9.7-inch)", identifiers: []string{"iPad6,3", "iPad6,4"}, family: FamilyPad, diagonal: 9.7, ratio: ratio3x4, ppi: 264, cpu: CPUA9X, cameras: camWide, features: featPro | featTouchID | featPencil | featSmartKeyboard},
	IPadPro12Inch:  {name: "iPad Pro (12.9-inch)", identifiers: []string{"iPad6,7", "iPad6,8"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUA9X, cameras: camWide, features: featPro | featTouchID | featPencil | featSmartKeyboard},
	IPadPro12Inch2: {name: "iPad Pro (12.9-inch) (2nd generation)", identifiers: []string{"iPad7,1", "iPad7,2"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUA10XFusion, cameras: camWide, features: featPro | featTouchID | featPencil | featSmartKeyboard},
	IPadPro10Inch:  {name: "iPad Pro (10.5-inch)", identifiers: []string{"iPad7,3", "iPad7,4"}, family: FamilyPad, diagonal: 10.5, ratio: ratio3x4, ppi: 264, cpu: CPUA10XFusion, cameras: camWide, features: featPro | featTouchID | featPencil | featSmartKeyboard},
	IPadPro11Inch:  {name: "iPad Pro (11-inch)", identifiers: []string{"iPad8,1", "iPad8,2", "iPad8,3", "iPad8,4"}, family: FamilyPad, diagonal: 11, ratio: ratioPro11, ppi: 264, cpu: CPUA12XBionic, cameras: camWide, features: padProModern | featPencil2},
	IPadPro12Inch3: {name: "iPad Pro (12.9-inch) (3rd generation)", identifiers: []string{"iPad8,5", "iPad8,6", "iPad8,7", "iPad8,8"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUA12XBionic, cameras: camWide, features: padProModern | featPencil2},
	IPadPro11Inch2: {name: "iPad Pro (11-inch) (2nd generation)", identifiers: []string{"iPad8,9", "iPad8,10"}, family: FamilyPad, diagonal: 11, ratio: ratioPro11, ppi: 264, cpu: CPUA12ZBionic, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar},
	IPadPro12Inch4: {name: "iPad Pro (12.9-inch) (4th generation)", identifiers: []string{"iPad8,11", "iPad8,12"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUA12ZBionic, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar},
	IPadPro11Inch3: {name: "iPad Pro (11-inch) (3rd generation)", identifiers: []string{"iPad13,4", "iPad13,5", "iPad13,6", "iPad13,7"}, family: FamilyPad, diagonal: 11, ratio: ratioPro11, ppi: 264, cpu: CPUM1, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar | feat5G},
	IPadPro12Inch5: {name: "iPad Pro (12.9-inch) (5th generation)", identifiers: []string{"iPad13,8", "iPad13,9", "iPad13,10", "iPad13,11"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUM1, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar | feat5G},
	IPadPro11Inch4: {name: "iPad Pro (11-inch) (4th generation)", identifiers: []string{"iPad14,3", "iPad14,4"}, family: FamilyPad, diagonal: 11, ratio: ratioPro11, ppi: 264, cpu: CPUM2, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar | feat5G},
	IPadPro12Inch6: {name: "iPad Pro (12.9-inch) (6th generation)", identifiers: []string{"iPad14,5", "iPad14,6"}, family: FamilyPad, diagonal: 12.9, ratio: ratio3x4, ppi: 264, cpu: CPUM2, cameras: camWideUltra, features: padProModern | featPencil2 | featLidar | feat5G},
	IPadPro11M4:    {name: "iPad Pro 11-inch (M4)", identifiers: []string{"iPad16,3", "iPad16,4"}, family: FamilyPad, diagonal: 11.1, ratio: Ratio{Width: 417, Height: 605}, ppi: 264, cpu: CPUM4, cameras: camWide, features: padProModern | featPencilPro | featLidar | feat5G},
	IPadPro13M4:    {name: "iPad Pro 13-inch (M4)", identifiers: []string{"iPad16,5", "iPad16,6"}, family: FamilyPad, diagonal: 13, ratio: ratio3x4, ppi: 264, cpu: CPUM4, cameras: camWide, features: padProModern | featPencilPro | featLidar | feat5G},

	HomePod:     {name: "HomePod", identifiers: []string{"AudioAccessory1,1", "AudioAccessory1,2"}, family: FamilyHomePod, ratio: Ratio{Width: 4, Height: 5}, cpu: CPUA8},
	HomePodMini: {name: "HomePod mini", identifiers: []string{"AudioAccessory5,1"}, family: FamilyHomePod, cpu: CPUS5},
	HomePod2:    {name: "HomePod (2nd generation)", identifiers: []string{"AudioAccessory6,1"}, family: FamilyHomePod, ratio: Ratio{Width: 4, Height: 5}, cpu: CPUS7},

	AppleTVHD:  {name: "Apple TV HD", identifiers: []string{"AppleTV5,3"}, family: FamilyTV, cpu: CPUA8},
	AppleTV4K:  {name: "Apple TV 4K", identifiers: []string{"AppleTV6,2"}, family: FamilyTV, cpu: CPUA10XFusion},
	AppleTV4K2: {name: "Apple TV 4K (2nd generation)", identifiers: []string{"AppleTV11,1"}, family: FamilyTV, cpu: CPUA12Bionic},
	AppleTV4K3: {name: "Apple TV 4K (3rd generation)", identifiers: []string{"AppleTV14,1"}, family: FamilyTV, cpu: CPUA15Bionic},

	AppleWatchSeries0_38mm:  {name: "Apple Watch (1st generation) 38mm", identifiers: []string{"Watch1,1"}, family: FamilyWatch, diagonal: 1.5, ratio: ratioWatch4x5, ppi: 290, cpu: CPUS1},
	AppleWatchSeries0_42mm:  {name: "Apple Watch (1st generation) 42mm", identifiers: []string{"Watch1,2"}, family: FamilyWatch, diagonal: 1.6, ratio: ratioWatch4x5, ppi: 303, cpu: CPUS1},
	AppleWatchSeries1_38mm:  {name: "Apple Watch Series 1 38mm", identifiers: []string{"Watch2,6"}, family: FamilyWatch, diagonal: 1.5, ratio: ratioWatch4x5, ppi: 290, cpu: CPUS1P},
	AppleWatchSeries1_42mm:  {name: "Apple Watch Series 1 42mm", identifiers: []string{"Watch2,7"}, family: FamilyWatch, diagonal: 1.6, ratio: ratioWatch4x5, ppi: 303, cpu: CPUS1P},
	AppleWatchSeries2_38mm:  {name: "Apple Watch Series 2 38mm", identifiers: []string{"Watch2,3"}, family: FamilyWatch, diagonal: 1.5, ratio: ratioWatch4x5, ppi: 290, cpu: CPUS2},
	AppleWatchSeries2_42mm:  {name: "Apple Watch Series 2 42mm", identifiers: []string{"Watch2,4"}, family: FamilyWatch, diagonal: 1.6, ratio: ratioWatch4x5, ppi: 303, cpu: CPUS2},
	AppleWatchSeries3_38mm:  {name: "Apple Watch Series 3 38mm", identifiers: []string{"Watch3,1", "Watch3,3"}, family: FamilyWatch, diagonal: 1.5, ratio: ratioWatch4x5, ppi: 290, cpu: CPUS3},
	AppleWatchSeries3_42mm:  {name: "Apple Watch Series 3 42mm", identifiers: []string{"Watch3,2", "Watch3,4"}, family: FamilyWatch, diagonal: 1.6, ratio: ratioWatch4x5, ppi: 303, cpu: CPUS3},
	AppleWatchSeries4_40mm:  {name: "Apple Watch Series 4 40mm", identifiers: []string{"Watch4,1", "Watch4,3"}, family: FamilyWatch, diagonal: 1.8, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS4},
	AppleWatchSeries4_44mm:  {name: "Apple Watch Series 4 44mm", identifiers: []string{"Watch4,2", "Watch4,4"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS4},
	AppleWatchSeries5_40mm:  {name: "Apple Watch Series 5 40mm", identifiers: []string{"Watch5,1", "Watch5,3"}, family: FamilyWatch, diagonal: 1.8, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS5},
	AppleWatchSeries5_44mm:  {name: "Apple Watch Series 5 44mm", identifiers: []string{"Watch5,2", "Watch5,4"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS5},
	AppleWatchSeries6_40mm:  {name: "Apple Watch Series 6 40mm", identifiers: []string{"Watch6,1", "Watch6,3"}, family: FamilyWatch, diagonal: 1.8, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS6},
	AppleWatchSeries6_44mm:  {name: "Apple Watch Series 6 44mm", identifiers: []string{"Watch6,2", "Watch6,4"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS6},
	AppleWatchSE_40mm:       {name: "Apple Watch SE 40mm", identifiers: []string{"Watch5,9", "Watch5,11"}, family: FamilyWatch, diagonal: 1.8, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS5},
	AppleWatchSE_44mm:       {name: "Apple Watch SE 44mm", identifiers: []string{"Watch5,10", "Watch5,12"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS5},
	AppleWatchSeries7_41mm:  {name: "Apple Watch Series 7 41mm", identifiers: []string{"Watch6,6", "Watch6,8"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS7},
	AppleWatchSeries7_45mm:  {name: "Apple Watch Series 7 45mm", identifiers: []string{"Watch6,7", "Watch6,9"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS7},
	AppleWatchSeries8_41mm:  {name: "Apple Watch Series 8 41mm", identifiers: []string{"Watch6,14", "Watch6,16"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS8},
	AppleWatchSeries8_45mm:  {name: "Apple Watch Series 8 45mm", identifiers: []string{"Watch6,15", "Watch6,17"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS8},
	AppleWatchSE2_40mm:      {name: "Apple Watch SE (2nd generation) 40mm", identifiers: []string{"Watch6,10", "Watch6,12"}, family: FamilyWatch, diagonal: 1.8, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS8},
	AppleWatchSE2_44mm:      {name: "Apple Watch SE (2nd generation) 44mm", identifiers: []string{"Watch6,11", "Watch6,13"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS8},
	AppleWatchUltra:         {name: "Apple Watch Ultra", identifiers: []string{"Watch6,18"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 338, cpu: CPUS8},
	AppleWatchSeries9_41mm:  {name: "Apple Watch Series 9 41mm", identifiers: []string{"Watch7,1", "Watch7,3"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS9},
	AppleWatchSeries9_45mm:  {name: "Apple Watch Series 9 45mm", identifiers: []string{"Watch7,2", "Watch7,4"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS9},
	AppleWatchUltra2:        {name: "Apple Watch Ultra 2", identifiers: []string{"Watch7,5"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 338, cpu: CPUS9},
	AppleWatchSeries10_42mm: {name: "Apple Watch Series 10 42mm", identifiers: []string{"Watch7,8", "Watch7,10"}, family: FamilyWatch, diagonal: 1.9, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS10},
	AppleWatchSeries10_46mm: {name: "Apple Watch Series 10 46mm", identifiers: []string{"Watch7,9", "Watch7,11"}, family: FamilyWatch, diagonal: 2.0, ratio: ratioWatch4x5, ppi: 326, cpu: CPUS10},

	AppleVisionPro: {name: "Apple Vision Pro", identifiers: []string{"RealityDevice14,1"}, family: FamilyVision, cpu: CPUM2},
}

// byIdentifier maps raw identifiers to models.
var byIdentifier = func() map[string]Model {
	m := make(map[string]Model)
	for i := range models {
		for _, id := range models[i].identifiers {
			m[id] = Model(i)
		}
	}
	return m
}()
