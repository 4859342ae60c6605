package shape

// Sampled silhouettes. Each table holds radius samples evenly spaced in
// angle over one turn; Max is the value that maps to a factor of 1.

var hexagonTable = Table{
	Max: 213,
	Samples: []uint16{
		211, 212, 212, 212, 212, 211, 211, 211, 210, 210, 210, 209, 208, 207, 207, 206, 205, 204, 203, 202,
		202, 201, 200, 200, 199, 199, 198, 198, 197, 197, 196, 196, 195, 195, 195, 194, 194, 194, 193, 193,
		193, 192, 192, 192, 192, 192, 191, 192, 191, 191, 191, 191, 191, 191, 192, 191, 192, 192, 192, 192,
		192, 192, 192, 193, 193, 193, 193, 193, 194, 194, 194, 195, 195, 195, 196, 196, 197, 197, 198, 198,
		199, 200, 200, 201, 202, 202, 203, 204, 204, 204, 205, 206, 207, 209, 209, 209, 210, 210, 211, 211,
		211, 212, 212, 212, 212, 212, 212, 212, 212, 212, 211, 211, 211, 210, 210, 209, 209, 208, 207, 206,
		205, 205, 204, 203, 203, 202, 201, 201, 200, 199, 199, 198, 198, 197, 197, 196, 196, 195, 195, 195,
		194, 194, 194, 193, 193, 193, 193, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
		192, 192, 192, 192, 192, 192, 192, 192, 193, 193, 193, 193, 194, 194, 194, 195, 195, 195, 196, 196,
		197, 197, 198, 198, 199, 199, 200, 200, 201, 202, 202, 203, 204, 205, 205, 206, 207, 208, 209, 209,
		210, 211, 210, 210, 211, 211, 211, 211, 211, 211, 211, 212, 212, 212, 211, 211, 211, 210, 210, 209,
		209, 209, 208, 207, 206, 205, 204, 203, 202, 202, 202, 201, 200, 199, 199, 199, 198, 198, 197, 197,
		196, 196, 195, 195, 195, 194, 194, 194, 193, 193, 193, 193, 193, 192, 192, 191, 192, 192, 191, 191,
		192, 191, 191, 191, 191, 191, 191, 191, 192, 192, 192, 192, 192, 193, 193, 193, 193, 194, 194, 194,
		195, 195, 196, 196, 196, 197, 197, 198, 198, 199, 199, 200, 200, 201, 202, 202, 203, 204, 205, 205,
		206, 207, 208, 209, 210, 209, 210, 210, 211, 212, 212, 212, 212, 212, 212, 212, 212, 212, 212, 212,
		211, 211, 210, 210, 210, 209, 208, 207, 206, 206, 205, 204, 203, 202, 202, 201, 200, 200, 199, 199,
		198, 198, 197, 197, 196, 196, 195, 195, 195, 194, 194, 194, 193, 193, 193, 192, 192, 192, 192, 191,
		192, 192, 191, 191, 192, 191, 191, 192, 192, 191, 192, 192, 192, 192, 192, 192, 192, 192, 193, 193,
		193, 193, 193, 194, 194, 194, 195, 195, 196, 196, 196, 197, 198, 198, 199, 199, 200, 201, 201, 202,
		203, 204, 205, 204, 205, 206, 207, 208, 209, 209, 210, 211, 211, 210, 211, 211, 211, 212, 212, 212,
		212, 212, 212, 212, 211, 211, 211, 210, 210, 209, 209, 208, 207, 206, 206, 205, 204, 203, 203, 202,
		201, 201, 200, 199, 199, 198, 198, 197, 197, 196, 196, 196, 195, 195, 194, 194, 194, 193, 193, 193,
		193, 193, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
		192, 192, 193, 193, 193, 193, 194, 194, 194, 195, 195, 195, 196, 196, 197, 197, 198, 198, 199, 199,
		200, 200, 201, 202, 202, 203, 204, 204, 205, 206, 207, 208, 209, 208, 209, 210, 210, 211, 211, 211,
		211, 211, 211, 212, 212, 211, 212, 212, 212, 211, 211, 211, 210, 209, 209, 209, 208, 207, 206, 205,
		204, 203, 203, 202, 202, 201, 200, 199, 200, 199, 198, 198, 197, 197, 196, 196, 196, 195, 194, 195,
		194, 194, 193, 193, 193, 192, 193, 192, 192, 191, 192, 191, 191, 191, 191, 191, 191, 191, 191, 191,
		191, 192, 192, 192, 192, 192, 193, 193, 193, 193, 194, 194, 194, 193, 195, 195, 195, 196, 196, 197,
		196, 198, 198, 199, 199, 200, 200, 201, 202, 202, 203, 204, 204, 205, 206, 207, 208, 209, 210, 209,
		210, 210, 211, 211, 212, 212, 212, 212, 213,
	},
}

var hyperbolicTable = Table{
	Max: 171,
	Samples: []uint16{
		160, 146, 141, 133, 128, 125, 122, 119, 116, 113, 111, 109, 108, 106, 105, 102, 100, 100, 98, 96,
		95, 95, 94, 92, 92, 90, 89, 89, 88, 87, 86, 86, 85, 84, 83, 84, 82, 82, 81, 81,
		80, 80, 79, 79, 78, 78, 78, 77, 77, 76, 77, 75, 76, 75, 75, 75, 75, 74, 74, 75,
		74, 73, 74, 73, 73, 72, 73, 72, 73, 72, 72, 73, 72, 73, 72, 73, 72, 73, 72, 73,
		72, 73, 72, 73, 72, 73, 72, 73, 72, 73, 72, 73, 72, 73, 73, 73, 74, 74, 74, 75,
		74, 75, 75, 75, 75, 76, 76, 77, 77, 77, 77, 78, 78, 79, 79, 79, 80, 81, 82, 81,
		82, 83, 84, 83, 85, 86, 86, 87, 87, 89, 90, 91, 91, 92, 93, 95, 95, 96, 98, 100,
		100, 102, 104, 106, 107, 108, 110, 113, 116, 119, 122, 125, 129, 133, 137, 144, 154, 160, 151, 145,
		136, 131, 127, 124, 121, 118, 115, 112, 110, 109, 107, 105, 103, 101, 100, 99, 97, 96, 96, 94,
		92, 92, 90, 90, 90, 88, 87, 86, 86, 86, 84, 84, 83, 82, 83, 81, 81, 80, 80, 79,
		79, 78, 78, 78, 77, 78, 76, 77, 75, 76, 75, 75, 75, 75, 74, 74, 73, 74, 73, 74,
		73, 73, 72, 73, 72, 73, 72, 73, 72, 71, 72, 71, 71, 72, 71, 72, 71, 72, 71, 72,
		71, 72, 71, 72, 73, 72, 73, 72, 73, 72, 73, 73, 73, 73, 73, 74, 75, 73, 74, 75,
		75, 75, 76, 75, 76, 76, 76, 77, 78, 77, 78, 79, 78, 79, 80, 81, 80, 81, 82, 83,
		83, 83, 85, 85, 85, 86, 87, 89, 89, 90, 91, 91, 93, 95, 94, 96, 98, 99, 100, 102,
		104, 105, 107, 107, 110, 113, 115, 118, 121, 124, 127, 131, 138, 146, 152, 162, 152, 141, 136, 131,
		128, 124, 121, 118, 115, 113, 110, 109, 108, 106, 104, 102, 101, 100, 98, 97, 96, 95, 93, 93,
		93, 91, 90, 89, 88, 88, 87, 86, 85, 85, 85, 83, 83, 83, 82, 81, 81, 81, 80, 79,
		79, 79, 78, 78, 77, 78, 77, 77, 76, 76, 75, 76, 76, 75, 75, 75, 74, 74, 75, 74,
		75, 74, 74, 73, 74, 73, 74, 73, 74, 73, 74, 73, 73, 73, 73, 74, 73, 74, 73, 73,
		73, 73, 74, 74, 74, 74, 74, 74, 75, 76, 74, 75, 75, 75, 76, 75, 76, 77, 76, 77,
		78, 77, 78, 77, 79, 79, 80, 79, 80, 81, 81, 82, 82, 83, 83, 84, 84, 84, 85, 86,
		87, 87, 88, 89, 90, 92, 92, 92, 94, 95, 96, 98, 99, 99, 101, 103, 105, 105, 106, 109,
		111, 114, 116, 120, 123, 126, 129, 133, 137, 141, 152, 171, 0, 151, 144, 135, 131, 127, 125, 121,
		119, 115, 113, 110, 110, 109, 108, 107, 106, 103, 101, 100, 99, 97, 97, 95, 93, 94, 93, 92,
		91, 92, 90, 89, 90, 87, 87, 85, 86, 84, 84, 83, 83, 82, 81, 82, 80, 80, 79, 80,
		79, 79, 78, 78, 77, 78, 76, 77, 76, 75, 75, 74, 75, 74, 74, 75, 74, 75, 74, 74,
		74, 74, 73, 74, 75, 74, 75, 74, 74, 75, 74, 75, 73, 74, 73, 74, 74, 75, 74, 74,
		74, 75, 74, 75, 75, 75, 76, 75, 76, 75, 76, 77, 76, 76, 77, 76, 78, 78, 78, 78,
		79, 78, 80, 80, 80, 81, 81, 82, 82, 83, 83, 84, 85, 85, 86, 86, 87, 88, 89, 89,
		90, 91, 92, 92, 94, 95, 96, 99, 99, 99, 101, 104, 106, 107, 108, 109, 111, 113, 116, 118,
		120, 123, 126, 131, 137, 142, 146, 152, 162,
	},
}

var sicklecellTable = Table{
	Max: 353,
	Samples: []uint16{
		36, 38, 39, 38, 39, 40, 37, 38, 37, 38, 39, 37, 38, 38, 37, 39, 37, 38, 39, 37,
		38, 38, 37, 39, 38, 40, 38, 37, 39, 38, 37, 39, 38, 38, 38, 39, 39, 38, 40, 39,
		40, 40, 39, 40, 39, 41, 40, 41, 42, 42, 43, 44, 42, 43, 44, 45, 43, 44, 45, 44,
		46, 45, 46, 45, 47, 47, 48, 49, 49, 50, 49, 50, 51, 52, 53, 54, 53, 55, 56, 58,
		58, 60, 63, 63, 64, 65, 65, 66, 67, 69, 70, 71, 72, 73, 74, 75, 78, 79, 82, 85,
		88, 90, 93, 95, 98, 102, 106, 110, 112, 116, 130, 143, 353, 351, 349, 348, 346, 344, 342, 340,
		339, 336, 335, 333, 330, 328, 326, 324, 322, 320, 318, 315, 313, 312, 309, 307, 304, 303, 300, 297,
		296, 293, 291, 288, 286, 285, 281, 280, 278, 274, 272, 270, 267, 265, 264, 261, 258, 257, 254, 252,
		249, 247, 244, 242, 240, 238, 235, 233, 231, 228, 226, 224, 222, 220, 219, 216, 213, 212, 210, 207,
		206, 204, 202, 200, 199, 196, 195, 193, 191, 190, 188, 186, 184, 182, 181, 179, 178, 176, 175, 174,
		171, 169, 168, 167, 165, 164, 163, 161, 160, 159, 158, 157, 155, 154, 152, 151, 151, 150, 148, 147,
		146, 144, 143, 142, 141, 141, 139, 139, 138, 136, 136, 135, 133, 133, 132, 132, 131, 130, 129, 128,
		128, 127, 126, 125, 125, 124, 123, 122, 122, 121, 122, 120, 120, 119, 118, 118, 118, 117, 116, 116,
		115, 116, 115, 114, 114, 113, 112, 112, 111, 112, 111, 111, 110, 110, 109, 109, 108, 108, 107, 107,
		107, 107, 107, 107, 106, 106, 106, 105, 105, 105, 105, 104, 104, 104, 104, 103, 103, 103, 103, 103,
		103, 102, 102, 103, 102, 102, 103, 102, 103, 103, 102, 102, 102, 102, 102, 102, 102, 102, 102, 102,
		102, 102, 102, 102, 102, 102, 102, 102, 102, 103, 102, 102, 102, 102, 103, 103, 103, 103, 103, 104,
		104, 104, 105, 105, 104, 104, 105, 105, 106, 106, 106, 107, 107, 108, 107, 107, 108, 108, 108, 108,
		109, 109, 110, 110, 110, 111, 111, 112, 111, 112, 113, 113, 114, 114, 114, 115, 116, 117, 117, 117,
		118, 118, 119, 120, 120, 121, 121, 121, 123, 124, 123, 125, 126, 126, 127, 128, 128, 128, 130, 130,
		131, 133, 133, 134, 135, 136, 136, 138, 138, 139, 140, 141, 143, 143, 145, 146, 146, 147, 149, 150,
		151, 152, 154, 155, 156, 157, 158, 160, 161, 163, 164, 165, 167, 168, 169, 172, 173, 174, 175, 176,
		178, 181, 181, 183, 185, 187, 188, 190, 192, 193, 195, 198, 198, 201, 204, 204, 207, 209, 210, 212,
		214, 216, 218, 220, 222, 224, 227, 229, 231, 233, 236, 238, 240, 242, 244, 247, 248, 251, 253, 255,
		256, 260, 262, 263, 266, 268, 270, 272, 274, 277, 279, 281, 284, 285, 288, 291, 292, 294, 296, 298,
		301, 303, 305, 307, 309, 311, 313, 315, 317, 319, 321, 323, 325, 327, 329, 331, 332, 334, 119, 115,
		110, 106, 104, 92, 87, 83, 82, 79, 76, 75, 73, 72, 70, 69, 68, 67, 66, 65, 64, 63,
		64, 62, 61, 60, 58, 57, 58, 55, 54, 55, 53, 53, 51, 50, 51, 49, 50, 47, 48, 46,
		46, 47, 45, 45, 44, 45, 43, 42, 43, 44, 41, 41, 42, 43, 40, 40, 41, 42, 39, 39,
		40, 40, 39, 40, 38, 39, 40, 38, 39, 37, 38, 37, 38, 39, 37, 38, 36, 37, 38, 37,
		38, 39, 37, 38, 39, 37, 37, 36, 37, 38, 36, 37, 38, 36, 37, 36, 37, 38, 37, 38,
		39, 37, 38, 39, 37, 38, 38, 39, 40,
	},
}

var dropletTable = Table{
	Max: 1011,
	Samples: []uint16{
		616, 615, 613, 611, 608, 606, 605, 602, 600, 599, 596, 595, 594, 591, 590, 588, 587, 585, 584, 583,
		581, 580, 578, 578, 576, 575, 574, 573, 572, 571, 570, 570, 568, 567, 567, 566, 566, 565, 565, 564,
		563, 563, 562, 562, 562, 561, 561, 561, 561, 561, 561, 561, 561, 561, 561, 561, 561, 563, 563, 563,
		563, 563, 564, 565, 566, 566, 567, 567, 568, 570, 571, 572, 573, 574, 575, 576, 577, 578, 580, 581,
		582, 584, 586, 588, 588, 590, 593, 593, 596, 598, 600, 602, 604, 607, 609, 612, 614, 617, 619, 623,
		625, 627, 630, 634, 637, 640, 644, 647, 650, 654, 657, 661, 665, 670, 673, 678, 681, 686, 690, 695,
		700, 705, 710, 715, 720, 726, 732, 737, 742, 749, 755, 761, 769, 775, 782, 789, 796, 803, 811, 819,
		828, 835, 844, 853, 862, 871, 881, 891, 901, 911, 922, 934, 945, 956, 970, 983, 996, 1010, 998, 985,
		972, 959, 948, 935, 925, 913, 903, 892, 882, 874, 863, 855, 846, 837, 828, 820, 813, 804, 797, 790,
		783, 776, 769, 762, 756, 750, 743, 738, 732, 726, 720, 715, 710, 705, 701, 696, 691, 686, 682, 678,
		674, 670, 666, 662, 659, 654, 651, 647, 644, 640, 637, 634, 631, 628, 625, 622, 620, 617, 615, 612,
		610, 608, 605, 603, 601, 598, 597, 595, 592, 591, 589, 587, 585, 584, 583, 581, 580, 578, 577, 576,
		574, 573, 572, 571, 570, 569, 569, 568, 567, 567, 566, 564, 564, 564, 564, 563, 562, 562, 562, 562,
		561, 561, 561, 561, 561, 561, 561, 561, 561, 562, 561, 562, 563, 563, 563, 563, 564, 565, 565, 566,
		567, 567, 569, 569, 570, 571, 572, 573, 574, 575, 576, 577, 579, 579, 581, 582, 584, 585, 587, 588,
		589, 592, 593, 595, 597, 598, 600, 602, 604, 606, 608, 610, 612, 615, 617, 619, 621, 623, 626, 628,
		630, 633, 634, 637, 640, 642, 645, 648, 650, 653, 656, 658, 661, 663, 666, 669, 671, 674, 677, 679,
		682, 684, 687, 690, 693, 695, 699, 701, 704, 707, 711, 713, 716, 720, 723, 726, 729, 733, 736, 740,
		743, 746, 750, 754, 757, 761, 764, 767, 771, 775, 779, 782, 785, 789, 793, 797, 801, 804, 808, 813,
		816, 819, 823, 827, 831, 834, 838, 842, 846, 850, 853, 856, 860, 864, 868, 871, 875, 878, 882, 885,
		888, 891, 895, 899, 902, 904, 907, 911, 913, 916, 920, 923, 925, 927, 930, 933, 936, 938, 941, 943,
		946, 948, 949, 952, 954, 957, 958, 960, 962, 964, 965, 968, 969, 971, 972, 974, 975, 977, 979, 980,
		982, 983, 985, 986, 988, 989, 990, 991, 993, 994, 996, 997, 998, 999, 1000, 1002, 1002, 1004, 1004, 1005,
		1006, 1007, 1007, 1008, 1008, 1008, 1009, 1009, 1010, 1010, 1010, 1011, 0, 1010, 1010, 1009, 1010, 1009, 1009, 1008,
		1007, 1006, 1006, 1005, 1005, 1004, 1002, 1002, 1001, 999, 998, 998, 996, 995, 993, 992, 991, 989, 988, 987,
		985, 984, 983, 981, 980, 978, 977, 975, 974, 972, 970, 968, 967, 964, 963, 961, 959, 957, 955, 953,
		951, 949, 946, 944, 942, 939, 937, 934, 932, 929, 927, 924, 921, 918, 915, 912, 910, 906, 902, 899,
		896, 893, 890, 886, 883, 880, 876, 873, 869, 865, 862, 859, 855, 851, 847, 843, 840, 836, 832, 829,
		825, 821, 818, 814, 810, 806, 802, 799, 795, 792, 788, 784, 780, 776, 773, 769, 766, 762, 759, 754,
		752, 748, 745, 741, 738, 734, 731, 728, 725, 722, 719, 715, 712, 709, 706, 703, 700, 697, 694, 691,
		689, 686, 683, 680, 677, 675, 672, 670, 667, 665, 662, 659, 656, 654, 651, 649, 646, 644, 641, 638,
		636, 634, 631, 629, 627, 624, 622, 620, 618,
	},
}

var brainTable = Table{
	Max: 445,
	Samples: []uint16{
		414, 413, 411, 412, 413, 414, 414, 415, 414, 413, 413, 411, 409, 407, 406, 410, 412, 413, 415, 416,
		417, 417, 417, 416, 415, 414, 412, 410, 408, 404, 404, 405, 406, 406, 407, 407, 407, 407, 408, 408,
		409, 408, 408, 407, 406, 404, 403, 399, 397, 395, 393, 391, 392, 393, 394, 394, 394, 393, 392, 391,
		391, 390, 389, 388, 386, 385, 383, 380, 376, 374, 372, 371, 371, 371, 372, 372, 372, 372, 372, 372,
		373, 374, 375, 376, 377, 377, 377, 376, 375, 374, 372, 371, 369, 369, 369, 370, 371, 371, 372, 371,
		372, 371, 372, 372, 372, 372, 372, 372, 371, 371, 370, 368, 367, 365, 365, 364, 364, 362, 361, 360,
		359, 359, 357, 357, 355, 354, 352, 351, 351, 351, 351, 351, 350, 350, 349, 348, 347, 346, 347, 346,
		347, 347, 346, 347, 346, 346, 345, 344, 343, 343, 343, 345, 347, 348, 349, 349, 350, 350, 349, 349,
		348, 347, 346, 346, 347, 348, 348, 348, 348, 347, 346, 346, 344, 344, 343, 344, 346, 349, 352, 355,
		357, 359, 360, 362, 362, 363, 363, 363, 363, 362, 361, 360, 358, 357, 360, 362, 365, 366, 368, 370,
		370, 371, 371, 372, 371, 370, 370, 369, 367, 369, 371, 374, 375, 377, 378, 378, 379, 379, 379, 379,
		378, 377, 375, 374, 374, 377, 379, 382, 384, 385, 387, 388, 389, 388, 388, 388, 387, 386, 385, 384,
		387, 390, 392, 393, 395, 395, 396, 396, 396, 396, 395, 394, 393, 391, 392, 392, 394, 395, 395, 395,
		395, 394, 393, 392, 392, 392, 392, 392, 392, 391, 392, 392, 392, 391, 391, 390, 390, 390, 390, 389,
		391, 393, 394, 395, 395, 395, 395, 395, 394, 393, 392, 390, 388, 387, 386, 387, 389, 392, 394, 395,
		396, 397, 397, 397, 397, 396, 396, 395, 392, 390, 388, 385, 381, 378, 377, 375, 374, 371, 368, 366,
		361, 355, 349, 322, 315, 309, 304, 298, 290, 288, 285, 283, 280, 276, 273, 269, 267, 262, 258, 252,
		248, 245, 240, 235, 231, 224, 220, 217, 210, 207, 202, 199, 197, 192, 190, 186, 182, 178, 174, 170,
		164, 163, 164, 164, 165, 165, 166, 166, 167, 168, 169, 169, 170, 171, 171, 173, 173, 174, 174, 175,
		175, 177, 177, 177, 178, 179, 179, 179, 179, 180, 180, 180, 181, 181, 181, 182, 182, 181, 182, 182,
		182, 182, 183, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182, 182,
		183, 183, 183, 183, 184, 183, 183, 183, 183, 183, 183, 183, 185, 185, 186, 186, 186, 185, 186, 186,
		188, 188, 189, 190, 190, 191, 192, 192, 193, 193, 194, 194, 195, 197, 198, 199, 203, 204, 204, 205,
		205, 210, 215, 218, 222, 226, 230, 235, 238, 240, 243, 246, 248, 251, 254, 255, 257, 259, 261, 262,
		264, 265, 266, 267, 269, 270, 271, 274, 275, 279, 281, 286, 292, 300, 309, 438, 440, 441, 442, 443,
		445, 445, 444, 443, 440, 434, 425, 411, 397, 387, 378, 371, 365, 361, 357, 353, 351, 348, 347, 345,
		343, 342, 341, 341, 341, 341, 342, 342, 342, 343, 344, 345, 347, 348, 349, 351, 353, 356, 357, 359,
		360, 361, 361, 362, 362, 362, 361, 360, 360, 359, 358, 357, 357, 359, 362, 366, 369, 371, 374, 375,
		377, 378, 380, 380, 380, 383, 388, 392, 395, 398, 401, 403, 406, 409, 410, 412, 414, 415, 416, 416,
		417, 419, 419, 420, 420, 420, 421, 421, 421, 422, 422, 423, 427, 431, 434, 437, 438, 440, 441, 441,
		441, 441, 440, 438, 436, 435, 434, 433, 432, 431, 430, 429, 428, 428, 426, 426, 426, 425, 424, 423,
		424, 424, 423, 422, 421, 419, 418, 416, 415,
	},
}
