package x64

import (
	"github.com/wdamron/dynasm/x64/feats"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// Operand patterns. Each pattern is a sequence of (type, size) pairs, one per
// operand; see matchInst for the meaning of each character. In identifiers
// the wildcard size "*" is written 0 and the unsized marker "!" is written 1.
const (
	argp_ uint8 = iota
	argp_Aw
	argp_Qw
	argp_Rw
	argp_Sw
	argp_Tw
	argp_Uw
	argp_Vw
	argp_fp
	argp_ib
	argp_id
	argp_iw
	argp_m0
	argp_m1
	argp_mb
	argp_md
	argp_mf
	argp_mo
	argp_mp
	argp_mq
	argp_mw
	argp_ob
	argp_od
	argp_r0
	argp_rb
	argp_rd
	argp_rq
	argp_rw
	argp_v0
	argp_vb
	argp_vd
	argp_A0i0
	argp_A0r0
	argp_AbCw
	argp_Abib
	argp_Abiq
	argp_AdBd
	argp_AdCw
	argp_Adib
	argp_Adiq
	argp_AqBd
	argp_Aqiq
	argp_AwCw
	argp_Awib
	argp_Awiq
	argp_CwAb
	argp_CwAd
	argp_CwAw
	argp_Wdrd
	argp_Wqrq
	argp_Xpfp
	argp_bobo
	argp_bom1
	argp_borq
	argp_cdrd
	argp_cqrq
	argp_ddrd
	argp_dqrq
	argp_fpXp
	argp_ibAb
	argp_ibAd
	argp_ibAw
	argp_idiw
	argp_iqAb
	argp_iqAd
	argp_iqAq
	argp_iqAw
	argp_iwib
	argp_iwiw
	argp_m0i0
	argp_m0ib
	argp_m0r0
	argp_m0y0
	argp_m1bo
	argp_m1yo
	argp_mbib
	argp_mbrb
	argp_mdrd
	argp_mdyo
	argp_mhyh
	argp_moyo
	argp_mpsw
	argp_mqrq
	argp_mqxq
	argp_mqyo
	argp_mwsw
	argp_r0A0
	argp_r0i0
	argp_r0ib
	argp_r0m0
	argp_r0m1
	argp_r0md
	argp_r0mq
	argp_r0mw
	argp_r0r0
	argp_r0sw
	argp_r0v0
	argp_r0vb
	argp_r0vw
	argp_r0y0
	argp_r0yo
	argp_rbib
	argp_rbmb
	argp_rbrb
	argp_rbvb
	argp_rdWd
	argp_rdcd
	argp_rddd
	argp_rdid
	argp_rdmd
	argp_rdmq
	argp_rdvw
	argp_rdxq
	argp_rdyo
	argp_rqWq
	argp_rqcq
	argp_rqdq
	argp_rqiq
	argp_rqmd
	argp_rqmo
	argp_rqmq
	argp_rqvd
	argp_rqvq
	argp_rqyo
	argp_rwiw
	argp_rwmb
	argp_swmp
	argp_swmw
	argp_swrw
	argp_uqxq
	argp_v0Bb
	argp_v0i0
	argp_v0ib
	argp_v0r0
	argp_vbBb
	argp_vbib
	argp_vbrb
	argp_vdxq
	argp_vdyo
	argp_vqrq
	argp_vqxq
	argp_vqyo
	argp_vwrw
	argp_whyh
	argp_woyo
	argp_xqib
	argp_xqmq
	argp_xquq
	argp_xqvd
	argp_xqvq
	argp_xqwo
	argp_xqxq
	argp_xqyo
	argp_y0m0
	argp_y0mb
	argp_y0md
	argp_y0mw
	argp_y0w0
	argp_y0wo
	argp_y0yo
	argp_yhmh
	argp_yhmo
	argp_yhmq
	argp_yhwh
	argp_yhyo
	argp_yoib
	argp_yom0
	argp_yom1
	argp_yomd
	argp_yomo
	argp_yomq
	argp_yomw
	argp_youq
	argp_yovd
	argp_yovq
	argp_yowo
	argp_yoxq
	argp_yoy0
	argp_yoyo
	argp_A0BdCd
	argp_AqBdCd
	argp_m0y0y0
	argp_mbyoib
	argp_mqyoib
	argp_mwyoib
	argp_r0r0v0
	argp_r0v0i0
	argp_r0v0ib
	argp_r0v0id
	argp_r0v0r0
	argp_rdxqib
	argp_rdyoib
	argp_rqyoib
	argp_v0r0Bb
	argp_v0r0ib
	argp_vdyoib
	argp_vqyoib
	argp_woy0ib
	argp_woyhib
	argp_xqm1ib
	argp_xqrdib
	argp_xquqib
	argp_xqvwib
	argp_y0k0y0
	argp_y0l0y0
	argp_y0loy0
	argp_y0w0ib
	argp_y0y0ib
	argp_y0y0m0
	argp_y0y0w0
	argp_y0y0wo
	argp_yhwhib
	argp_yhyhwh
	argp_yoibib
	argp_yok0yo
	argp_yom1ib
	argp_yomdib
	argp_yomqib
	argp_yomwib
	argp_yordib
	argp_yorwib
	argp_yovbib
	argp_yovdib
	argp_yovqib
	argp_yowoib
	argp_yowoyo
	argp_yoyoib
	argp_yoyomd
	argp_yoyomq
	argp_yoyov0
	argp_yoyowo
	argp_yoyoyo
	argp_y0y0w0ib
	argp_y0y0w0y0
	argp_y0y0y0w0
	argp_yhyhwhib
	argp_yhyhwoib
	argp_yoyoibib
	argp_yoyomdib
	argp_yoyomdyo
	argp_yoyomqib
	argp_yoyomqyo
	argp_yoyordib
	argp_yoyovbib
	argp_yoyovdib
	argp_yoyovqib
	argp_yoyovwib
	argp_yoyowoib
	argp_yoyowoyo
	argp_yoyoyoib
	argp_yoyoyomd
	argp_yoyoyomq
	argp_yoyoyowo
	argp_yoyoyoyo
)

var argpFormats = [...][8]byte{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{'A', 'w', 0, 0, 0, 0, 0, 0},
	{'Q', 'w', 0, 0, 0, 0, 0, 0},
	{'R', 'w', 0, 0, 0, 0, 0, 0},
	{'S', 'w', 0, 0, 0, 0, 0, 0},
	{'T', 'w', 0, 0, 0, 0, 0, 0},
	{'U', 'w', 0, 0, 0, 0, 0, 0},
	{'V', 'w', 0, 0, 0, 0, 0, 0},
	{'f', 'p', 0, 0, 0, 0, 0, 0},
	{'i', 'b', 0, 0, 0, 0, 0, 0},
	{'i', 'd', 0, 0, 0, 0, 0, 0},
	{'i', 'w', 0, 0, 0, 0, 0, 0},
	{'m', '*', 0, 0, 0, 0, 0, 0},
	{'m', '!', 0, 0, 0, 0, 0, 0},
	{'m', 'b', 0, 0, 0, 0, 0, 0},
	{'m', 'd', 0, 0, 0, 0, 0, 0},
	{'m', 'f', 0, 0, 0, 0, 0, 0},
	{'m', 'o', 0, 0, 0, 0, 0, 0},
	{'m', 'p', 0, 0, 0, 0, 0, 0},
	{'m', 'q', 0, 0, 0, 0, 0, 0},
	{'m', 'w', 0, 0, 0, 0, 0, 0},
	{'o', 'b', 0, 0, 0, 0, 0, 0},
	{'o', 'd', 0, 0, 0, 0, 0, 0},
	{'r', '*', 0, 0, 0, 0, 0, 0},
	{'r', 'b', 0, 0, 0, 0, 0, 0},
	{'r', 'd', 0, 0, 0, 0, 0, 0},
	{'r', 'q', 0, 0, 0, 0, 0, 0},
	{'r', 'w', 0, 0, 0, 0, 0, 0},
	{'v', '*', 0, 0, 0, 0, 0, 0},
	{'v', 'b', 0, 0, 0, 0, 0, 0},
	{'v', 'd', 0, 0, 0, 0, 0, 0},
	{'A', '*', 'i', '*', 0, 0, 0, 0},
	{'A', '*', 'r', '*', 0, 0, 0, 0},
	{'A', 'b', 'C', 'w', 0, 0, 0, 0},
	{'A', 'b', 'i', 'b', 0, 0, 0, 0},
	{'A', 'b', 'i', 'q', 0, 0, 0, 0},
	{'A', 'd', 'B', 'd', 0, 0, 0, 0},
	{'A', 'd', 'C', 'w', 0, 0, 0, 0},
	{'A', 'd', 'i', 'b', 0, 0, 0, 0},
	{'A', 'd', 'i', 'q', 0, 0, 0, 0},
	{'A', 'q', 'B', 'd', 0, 0, 0, 0},
	{'A', 'q', 'i', 'q', 0, 0, 0, 0},
	{'A', 'w', 'C', 'w', 0, 0, 0, 0},
	{'A', 'w', 'i', 'b', 0, 0, 0, 0},
	{'A', 'w', 'i', 'q', 0, 0, 0, 0},
	{'C', 'w', 'A', 'b', 0, 0, 0, 0},
	{'C', 'w', 'A', 'd', 0, 0, 0, 0},
	{'C', 'w', 'A', 'w', 0, 0, 0, 0},
	{'W', 'd', 'r', 'd', 0, 0, 0, 0},
	{'W', 'q', 'r', 'q', 0, 0, 0, 0},
	{'X', 'p', 'f', 'p', 0, 0, 0, 0},
	{'b', 'o', 'b', 'o', 0, 0, 0, 0},
	{'b', 'o', 'm', '!', 0, 0, 0, 0},
	{'b', 'o', 'r', 'q', 0, 0, 0, 0},
	{'c', 'd', 'r', 'd', 0, 0, 0, 0},
	{'c', 'q', 'r', 'q', 0, 0, 0, 0},
	{'d', 'd', 'r', 'd', 0, 0, 0, 0},
	{'d', 'q', 'r', 'q', 0, 0, 0, 0},
	{'f', 'p', 'X', 'p', 0, 0, 0, 0},
	{'i', 'b', 'A', 'b', 0, 0, 0, 0},
	{'i', 'b', 'A', 'd', 0, 0, 0, 0},
	{'i', 'b', 'A', 'w', 0, 0, 0, 0},
	{'i', 'd', 'i', 'w', 0, 0, 0, 0},
	{'i', 'q', 'A', 'b', 0, 0, 0, 0},
	{'i', 'q', 'A', 'd', 0, 0, 0, 0},
	{'i', 'q', 'A', 'q', 0, 0, 0, 0},
	{'i', 'q', 'A', 'w', 0, 0, 0, 0},
	{'i', 'w', 'i', 'b', 0, 0, 0, 0},
	{'i', 'w', 'i', 'w', 0, 0, 0, 0},
	{'m', '*', 'i', '*', 0, 0, 0, 0},
	{'m', '*', 'i', 'b', 0, 0, 0, 0},
	{'m', '*', 'r', '*', 0, 0, 0, 0},
	{'m', '*', 'y', '*', 0, 0, 0, 0},
	{'m', '!', 'b', 'o', 0, 0, 0, 0},
	{'m', '!', 'y', 'o', 0, 0, 0, 0},
	{'m', 'b', 'i', 'b', 0, 0, 0, 0},
	{'m', 'b', 'r', 'b', 0, 0, 0, 0},
	{'m', 'd', 'r', 'd', 0, 0, 0, 0},
	{'m', 'd', 'y', 'o', 0, 0, 0, 0},
	{'m', 'h', 'y', 'h', 0, 0, 0, 0},
	{'m', 'o', 'y', 'o', 0, 0, 0, 0},
	{'m', 'p', 's', 'w', 0, 0, 0, 0},
	{'m', 'q', 'r', 'q', 0, 0, 0, 0},
	{'m', 'q', 'x', 'q', 0, 0, 0, 0},
	{'m', 'q', 'y', 'o', 0, 0, 0, 0},
	{'m', 'w', 's', 'w', 0, 0, 0, 0},
	{'r', '*', 'A', '*', 0, 0, 0, 0},
	{'r', '*', 'i', '*', 0, 0, 0, 0},
	{'r', '*', 'i', 'b', 0, 0, 0, 0},
	{'r', '*', 'm', '*', 0, 0, 0, 0},
	{'r', '*', 'm', '!', 0, 0, 0, 0},
	{'r', '*', 'm', 'd', 0, 0, 0, 0},
	{'r', '*', 'm', 'q', 0, 0, 0, 0},
	{'r', '*', 'm', 'w', 0, 0, 0, 0},
	{'r', '*', 'r', '*', 0, 0, 0, 0},
	{'r', '*', 's', 'w', 0, 0, 0, 0},
	{'r', '*', 'v', '*', 0, 0, 0, 0},
	{'r', '*', 'v', 'b', 0, 0, 0, 0},
	{'r', '*', 'v', 'w', 0, 0, 0, 0},
	{'r', '*', 'y', '*', 0, 0, 0, 0},
	{'r', '*', 'y', 'o', 0, 0, 0, 0},
	{'r', 'b', 'i', 'b', 0, 0, 0, 0},
	{'r', 'b', 'm', 'b', 0, 0, 0, 0},
	{'r', 'b', 'r', 'b', 0, 0, 0, 0},
	{'r', 'b', 'v', 'b', 0, 0, 0, 0},
	{'r', 'd', 'W', 'd', 0, 0, 0, 0},
	{'r', 'd', 'c', 'd', 0, 0, 0, 0},
	{'r', 'd', 'd', 'd', 0, 0, 0, 0},
	{'r', 'd', 'i', 'd', 0, 0, 0, 0},
	{'r', 'd', 'm', 'd', 0, 0, 0, 0},
	{'r', 'd', 'm', 'q', 0, 0, 0, 0},
	{'r', 'd', 'v', 'w', 0, 0, 0, 0},
	{'r', 'd', 'x', 'q', 0, 0, 0, 0},
	{'r', 'd', 'y', 'o', 0, 0, 0, 0},
	{'r', 'q', 'W', 'q', 0, 0, 0, 0},
	{'r', 'q', 'c', 'q', 0, 0, 0, 0},
	{'r', 'q', 'd', 'q', 0, 0, 0, 0},
	{'r', 'q', 'i', 'q', 0, 0, 0, 0},
	{'r', 'q', 'm', 'd', 0, 0, 0, 0},
	{'r', 'q', 'm', 'o', 0, 0, 0, 0},
	{'r', 'q', 'm', 'q', 0, 0, 0, 0},
	{'r', 'q', 'v', 'd', 0, 0, 0, 0},
	{'r', 'q', 'v', 'q', 0, 0, 0, 0},
	{'r', 'q', 'y', 'o', 0, 0, 0, 0},
	{'r', 'w', 'i', 'w', 0, 0, 0, 0},
	{'r', 'w', 'm', 'b', 0, 0, 0, 0},
	{'s', 'w', 'm', 'p', 0, 0, 0, 0},
	{'s', 'w', 'm', 'w', 0, 0, 0, 0},
	{'s', 'w', 'r', 'w', 0, 0, 0, 0},
	{'u', 'q', 'x', 'q', 0, 0, 0, 0},
	{'v', '*', 'B', 'b', 0, 0, 0, 0},
	{'v', '*', 'i', '*', 0, 0, 0, 0},
	{'v', '*', 'i', 'b', 0, 0, 0, 0},
	{'v', '*', 'r', '*', 0, 0, 0, 0},
	{'v', 'b', 'B', 'b', 0, 0, 0, 0},
	{'v', 'b', 'i', 'b', 0, 0, 0, 0},
	{'v', 'b', 'r', 'b', 0, 0, 0, 0},
	{'v', 'd', 'x', 'q', 0, 0, 0, 0},
	{'v', 'd', 'y', 'o', 0, 0, 0, 0},
	{'v', 'q', 'r', 'q', 0, 0, 0, 0},
	{'v', 'q', 'x', 'q', 0, 0, 0, 0},
	{'v', 'q', 'y', 'o', 0, 0, 0, 0},
	{'v', 'w', 'r', 'w', 0, 0, 0, 0},
	{'w', 'h', 'y', 'h', 0, 0, 0, 0},
	{'w', 'o', 'y', 'o', 0, 0, 0, 0},
	{'x', 'q', 'i', 'b', 0, 0, 0, 0},
	{'x', 'q', 'm', 'q', 0, 0, 0, 0},
	{'x', 'q', 'u', 'q', 0, 0, 0, 0},
	{'x', 'q', 'v', 'd', 0, 0, 0, 0},
	{'x', 'q', 'v', 'q', 0, 0, 0, 0},
	{'x', 'q', 'w', 'o', 0, 0, 0, 0},
	{'x', 'q', 'x', 'q', 0, 0, 0, 0},
	{'x', 'q', 'y', 'o', 0, 0, 0, 0},
	{'y', '*', 'm', '*', 0, 0, 0, 0},
	{'y', '*', 'm', 'b', 0, 0, 0, 0},
	{'y', '*', 'm', 'd', 0, 0, 0, 0},
	{'y', '*', 'm', 'w', 0, 0, 0, 0},
	{'y', '*', 'w', '*', 0, 0, 0, 0},
	{'y', '*', 'w', 'o', 0, 0, 0, 0},
	{'y', '*', 'y', 'o', 0, 0, 0, 0},
	{'y', 'h', 'm', 'h', 0, 0, 0, 0},
	{'y', 'h', 'm', 'o', 0, 0, 0, 0},
	{'y', 'h', 'm', 'q', 0, 0, 0, 0},
	{'y', 'h', 'w', 'h', 0, 0, 0, 0},
	{'y', 'h', 'y', 'o', 0, 0, 0, 0},
	{'y', 'o', 'i', 'b', 0, 0, 0, 0},
	{'y', 'o', 'm', '*', 0, 0, 0, 0},
	{'y', 'o', 'm', '!', 0, 0, 0, 0},
	{'y', 'o', 'm', 'd', 0, 0, 0, 0},
	{'y', 'o', 'm', 'o', 0, 0, 0, 0},
	{'y', 'o', 'm', 'q', 0, 0, 0, 0},
	{'y', 'o', 'm', 'w', 0, 0, 0, 0},
	{'y', 'o', 'u', 'q', 0, 0, 0, 0},
	{'y', 'o', 'v', 'd', 0, 0, 0, 0},
	{'y', 'o', 'v', 'q', 0, 0, 0, 0},
	{'y', 'o', 'w', 'o', 0, 0, 0, 0},
	{'y', 'o', 'x', 'q', 0, 0, 0, 0},
	{'y', 'o', 'y', '*', 0, 0, 0, 0},
	{'y', 'o', 'y', 'o', 0, 0, 0, 0},
	{'A', '*', 'B', 'd', 'C', 'd', 0, 0},
	{'A', 'q', 'B', 'd', 'C', 'd', 0, 0},
	{'m', '*', 'y', '*', 'y', '*', 0, 0},
	{'m', 'b', 'y', 'o', 'i', 'b', 0, 0},
	{'m', 'q', 'y', 'o', 'i', 'b', 0, 0},
	{'m', 'w', 'y', 'o', 'i', 'b', 0, 0},
	{'r', '*', 'r', '*', 'v', '*', 0, 0},
	{'r', '*', 'v', '*', 'i', '*', 0, 0},
	{'r', '*', 'v', '*', 'i', 'b', 0, 0},
	{'r', '*', 'v', '*', 'i', 'd', 0, 0},
	{'r', '*', 'v', '*', 'r', '*', 0, 0},
	{'r', 'd', 'x', 'q', 'i', 'b', 0, 0},
	{'r', 'd', 'y', 'o', 'i', 'b', 0, 0},
	{'r', 'q', 'y', 'o', 'i', 'b', 0, 0},
	{'v', '*', 'r', '*', 'B', 'b', 0, 0},
	{'v', '*', 'r', '*', 'i', 'b', 0, 0},
	{'v', 'd', 'y', 'o', 'i', 'b', 0, 0},
	{'v', 'q', 'y', 'o', 'i', 'b', 0, 0},
	{'w', 'o', 'y', '*', 'i', 'b', 0, 0},
	{'w', 'o', 'y', 'h', 'i', 'b', 0, 0},
	{'x', 'q', 'm', '!', 'i', 'b', 0, 0},
	{'x', 'q', 'r', 'd', 'i', 'b', 0, 0},
	{'x', 'q', 'u', 'q', 'i', 'b', 0, 0},
	{'x', 'q', 'v', 'w', 'i', 'b', 0, 0},
	{'y', '*', 'k', '*', 'y', '*', 0, 0},
	{'y', '*', 'l', '*', 'y', '*', 0, 0},
	{'y', '*', 'l', 'o', 'y', '*', 0, 0},
	{'y', '*', 'w', '*', 'i', 'b', 0, 0},
	{'y', '*', 'y', '*', 'i', 'b', 0, 0},
	{'y', '*', 'y', '*', 'm', '*', 0, 0},
	{'y', '*', 'y', '*', 'w', '*', 0, 0},
	{'y', '*', 'y', '*', 'w', 'o', 0, 0},
	{'y', 'h', 'w', 'h', 'i', 'b', 0, 0},
	{'y', 'h', 'y', 'h', 'w', 'h', 0, 0},
	{'y', 'o', 'i', 'b', 'i', 'b', 0, 0},
	{'y', 'o', 'k', '*', 'y', 'o', 0, 0},
	{'y', 'o', 'm', '!', 'i', 'b', 0, 0},
	{'y', 'o', 'm', 'd', 'i', 'b', 0, 0},
	{'y', 'o', 'm', 'q', 'i', 'b', 0, 0},
	{'y', 'o', 'm', 'w', 'i', 'b', 0, 0},
	{'y', 'o', 'r', 'd', 'i', 'b', 0, 0},
	{'y', 'o', 'r', 'w', 'i', 'b', 0, 0},
	{'y', 'o', 'v', 'b', 'i', 'b', 0, 0},
	{'y', 'o', 'v', 'd', 'i', 'b', 0, 0},
	{'y', 'o', 'v', 'q', 'i', 'b', 0, 0},
	{'y', 'o', 'w', 'o', 'i', 'b', 0, 0},
	{'y', 'o', 'w', 'o', 'y', 'o', 0, 0},
	{'y', 'o', 'y', 'o', 'i', 'b', 0, 0},
	{'y', 'o', 'y', 'o', 'm', 'd', 0, 0},
	{'y', 'o', 'y', 'o', 'm', 'q', 0, 0},
	{'y', 'o', 'y', 'o', 'v', '*', 0, 0},
	{'y', 'o', 'y', 'o', 'w', 'o', 0, 0},
	{'y', 'o', 'y', 'o', 'y', 'o', 0, 0},
	{'y', '*', 'y', '*', 'w', '*', 'i', 'b'},
	{'y', '*', 'y', '*', 'w', '*', 'y', '*'},
	{'y', '*', 'y', '*', 'y', '*', 'w', '*'},
	{'y', 'h', 'y', 'h', 'w', 'h', 'i', 'b'},
	{'y', 'h', 'y', 'h', 'w', 'o', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'i', 'b', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'm', 'd', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'm', 'd', 'y', 'o'},
	{'y', 'o', 'y', 'o', 'm', 'q', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'm', 'q', 'y', 'o'},
	{'y', 'o', 'y', 'o', 'r', 'd', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'v', 'b', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'v', 'd', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'v', 'q', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'v', 'w', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'w', 'o', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'w', 'o', 'y', 'o'},
	{'y', 'o', 'y', 'o', 'y', 'o', 'i', 'b'},
	{'y', 'o', 'y', 'o', 'y', 'o', 'm', 'd'},
	{'y', 'o', 'y', 'o', 'y', 'o', 'm', 'q'},
	{'y', 'o', 'y', 'o', 'y', 'o', 'w', 'o'},
	{'y', 'o', 'y', 'o', 'y', 'o', 'y', 'o'},
}

// Instruction mnemonics.
const (
	AAA Inst = 1<<21 | 1<<16 | 0
	AAD Inst = 2<<21 | 1<<16 | 1
	AAM Inst = 3<<21 | 1<<16 | 2
	AAS Inst = 4<<21 | 1<<16 | 3
	ADC Inst = 5<<21 | 14<<16 | 4
	ADCX Inst = 6<<21 | 1<<16 | 18
	ADD Inst = 7<<21 | 14<<16 | 19
	ADDPD Inst = 8<<21 | 1<<16 | 33
	ADDPS Inst = 9<<21 | 1<<16 | 34
	ADDSD Inst = 10<<21 | 2<<16 | 35
	ADDSS Inst = 11<<21 | 2<<16 | 37
	ADDSUBPD Inst = 12<<21 | 1<<16 | 39
	ADDSUBPS Inst = 13<<21 | 1<<16 | 40
	ADOX Inst = 14<<21 | 1<<16 | 41
	AESDEC Inst = 15<<21 | 1<<16 | 42
	AESDECLAST Inst = 16<<21 | 1<<16 | 43
	AESENC Inst = 17<<21 | 1<<16 | 44
	AESENCLAST Inst = 18<<21 | 1<<16 | 45
	AESIMC Inst = 19<<21 | 1<<16 | 46
	AESKEYGENASSIST Inst = 20<<21 | 1<<16 | 47
	AND Inst = 21<<21 | 14<<16 | 48
	ANDN Inst = 22<<21 | 1<<16 | 62
	ANDNPD Inst = 23<<21 | 1<<16 | 63
	ANDNPS Inst = 24<<21 | 1<<16 | 64
	ANDPD Inst = 25<<21 | 1<<16 | 65
	ANDPS Inst = 26<<21 | 1<<16 | 66
	ARPL Inst = 27<<21 | 1<<16 | 67
	BEXTR Inst = 28<<21 | 2<<16 | 68
	BLCFILL Inst = 29<<21 | 1<<16 | 70
	BLCI Inst = 30<<21 | 1<<16 | 71
	BLCIC Inst = 31<<21 | 1<<16 | 72
	BLCMSK Inst = 32<<21 | 1<<16 | 73
	BLCS Inst = 33<<21 | 1<<16 | 74
	BLENDPD Inst = 34<<21 | 2<<16 | 75
	BLENDPS Inst = 35<<21 | 2<<16 | 77
	BLENDVPD Inst = 36<<21 | 2<<16 | 79
	BLENDVPS Inst = 37<<21 | 2<<16 | 81
	BLSFILL Inst = 38<<21 | 1<<16 | 83
	BLSI Inst = 39<<21 | 1<<16 | 84
	BLSIC Inst = 40<<21 | 1<<16 | 85
	BLSMSK Inst = 41<<21 | 1<<16 | 86
	BLSR Inst = 42<<21 | 1<<16 | 87
	BNDCL Inst = 43<<21 | 2<<16 | 88
	BNDCN Inst = 44<<21 | 2<<16 | 90
	BNDCU Inst = 45<<21 | 2<<16 | 92
	BNDLDX Inst = 46<<21 | 1<<16 | 94
	BNDMK Inst = 47<<21 | 1<<16 | 95
	BNDMOV Inst = 48<<21 | 4<<16 | 96
	BNDSTX Inst = 49<<21 | 1<<16 | 100
	BOUND Inst = 50<<21 | 1<<16 | 101
	BSF Inst = 51<<21 | 1<<16 | 102
	BSR Inst = 52<<21 | 1<<16 | 103
	BSWAP Inst = 53<<21 | 1<<16 | 104
	BT Inst = 54<<21 | 2<<16 | 105
	BTC Inst = 55<<21 | 4<<16 | 107
	BTR Inst = 56<<21 | 4<<16 | 111
	BTS Inst = 57<<21 | 4<<16 | 115
	BZHI Inst = 58<<21 | 1<<16 | 119
	CALL Inst = 59<<21 | 5<<16 | 120
	CALLF Inst = 60<<21 | 4<<16 | 125
	CBW Inst = 61<<21 | 1<<16 | 129
	CDQ Inst = 62<<21 | 1<<16 | 130
	CDQE Inst = 63<<21 | 1<<16 | 131
	CLAC Inst = 64<<21 | 1<<16 | 132
	CLC Inst = 65<<21 | 1<<16 | 133
	CLD Inst = 66<<21 | 1<<16 | 134
	CLFLUSH Inst = 67<<21 | 1<<16 | 135
	CLGI Inst = 68<<21 | 1<<16 | 136
	CLI Inst = 69<<21 | 1<<16 | 137
	CLTS Inst = 70<<21 | 1<<16 | 138
	CLZERO Inst = 71<<21 | 1<<16 | 139
	CMC Inst = 72<<21 | 1<<16 | 140
	CMOVA Inst = 73<<21 | 1<<16 | 141
	CMOVAE Inst = 74<<21 | 1<<16 | 142
	CMOVB Inst = 75<<21 | 1<<16 | 143
	CMOVBE Inst = 76<<21 | 1<<16 | 144
	CMOVC Inst = 77<<21 | 1<<16 | 145
	CMOVE Inst = 78<<21 | 1<<16 | 146
	CMOVG Inst = 79<<21 | 1<<16 | 147
	CMOVGE Inst = 80<<21 | 1<<16 | 148
	CMOVL Inst = 81<<21 | 1<<16 | 149
	CMOVLE Inst = 82<<21 | 1<<16 | 150
	CMOVNA Inst = 83<<21 | 1<<16 | 151
	CMOVNAE Inst = 84<<21 | 1<<16 | 152
	CMOVNB Inst = 85<<21 | 1<<16 | 153
	CMOVNBE Inst = 86<<21 | 1<<16 | 154
	CMOVNC Inst = 87<<21 | 1<<16 | 155
	CMOVNE Inst = 88<<21 | 1<<16 | 156
	CMOVNG Inst = 89<<21 | 1<<16 | 157
	CMOVNGE Inst = 90<<21 | 1<<16 | 158
	CMOVNL Inst = 91<<21 | 1<<16 | 159
	CMOVNLE Inst = 92<<21 | 1<<16 | 160
	CMOVNO Inst = 93<<21 | 1<<16 | 161
	CMOVNP Inst = 94<<21 | 1<<16 | 162
	CMOVNS Inst = 95<<21 | 1<<16 | 163
	CMOVNZ Inst = 96<<21 | 1<<16 | 164
	CMOVO Inst = 97<<21 | 1<<16 | 165
	CMOVP Inst = 98<<21 | 1<<16 | 166
	CMOVPE Inst = 99<<21 | 1<<16 | 167
	CMOVPO Inst = 100<<21 | 1<<16 | 168
	CMOVS Inst = 101<<21 | 1<<16 | 169
	CMOVZ Inst = 102<<21 | 1<<16 | 170
	CMP Inst = 103<<21 | 9<<16 | 171
	CMPEQPD Inst = 104<<21 | 1<<16 | 180
	CMPEQPS Inst = 105<<21 | 1<<16 | 181
	CMPEQSD Inst = 106<<21 | 2<<16 | 182
	CMPEQSS Inst = 107<<21 | 2<<16 | 184
	CMPLEPD Inst = 108<<21 | 1<<16 | 186
	CMPLEPS Inst = 109<<21 | 1<<16 | 187
	CMPLESD Inst = 110<<21 | 2<<16 | 188
	CMPLESS Inst = 111<<21 | 2<<16 | 190
	CMPLTPD Inst = 112<<21 | 1<<16 | 192
	CMPLTPS Inst = 113<<21 | 1<<16 | 193
	CMPLTSD Inst = 114<<21 | 2<<16 | 194
	CMPLTSS Inst = 115<<21 | 2<<16 | 196
	CMPNEQPD Inst = 116<<21 | 1<<16 | 198
	CMPNEQPS Inst = 117<<21 | 1<<16 | 199
	CMPNEQSD Inst = 118<<21 | 2<<16 | 200
	CMPNEQSS Inst = 119<<21 | 2<<16 | 202
	CMPNLEPD Inst = 120<<21 | 1<<16 | 204
	CMPNLEPS Inst = 121<<21 | 1<<16 | 205
	CMPNLESD Inst = 122<<21 | 2<<16 | 206
	CMPNLESS Inst = 123<<21 | 2<<16 | 208
	CMPNLTPD Inst = 124<<21 | 1<<16 | 210
	CMPNLTPS Inst = 125<<21 | 1<<16 | 211
	CMPNLTSD Inst = 126<<21 | 2<<16 | 212
	CMPNLTSS Inst = 127<<21 | 2<<16 | 214
	CMPORDPD Inst = 128<<21 | 1<<16 | 216
	CMPORDPS Inst = 129<<21 | 1<<16 | 217
	CMPORDSD Inst = 130<<21 | 2<<16 | 218
	CMPORDSS Inst = 131<<21 | 2<<16 | 220
	CMPPD Inst = 132<<21 | 1<<16 | 222
	CMPPS Inst = 133<<21 | 2<<16 | 223
	CMPSB Inst = 134<<21 | 1<<16 | 225
	CMPSD Inst = 135<<21 | 2<<16 | 226
	CMPSQ Inst = 136<<21 | 1<<16 | 228
	CMPSS Inst = 137<<21 | 2<<16 | 229
	CMPSW Inst = 138<<21 | 1<<16 | 231
	CMPUNORDPD Inst = 139<<21 | 1<<16 | 232
	CMPUNORDPS Inst = 140<<21 | 1<<16 | 233
	CMPUNORDSD Inst = 141<<21 | 2<<16 | 234
	CMPUNORDSS Inst = 142<<21 | 2<<16 | 236
	CMPXCHG Inst = 143<<21 | 4<<16 | 238
	CMPXCHG16B Inst = 144<<21 | 1<<16 | 242
	CMPXCHG8B Inst = 145<<21 | 1<<16 | 243
	COMISD Inst = 146<<21 | 2<<16 | 244
	COMISS Inst = 147<<21 | 2<<16 | 246
	CPU_READ Inst = 148<<21 | 1<<16 | 248
	CPU_WRITE Inst = 149<<21 | 1<<16 | 249
	CPUID Inst = 150<<21 | 1<<16 | 250
	CQO Inst = 151<<21 | 1<<16 | 251
	CRC32 Inst = 152<<21 | 3<<16 | 252
	CVTDQ2PD Inst = 153<<21 | 2<<16 | 255
	CVTDQ2PS Inst = 154<<21 | 1<<16 | 257
	CVTPD2DQ Inst = 155<<21 | 1<<16 | 258
	CVTPD2PI Inst = 156<<21 | 1<<16 | 259
	CVTPD2PS Inst = 157<<21 | 1<<16 | 260
	CVTPI2PD Inst = 158<<21 | 1<<16 | 261
	CVTPI2PS Inst = 159<<21 | 1<<16 | 262
	CVTPS2DQ Inst = 160<<21 | 1<<16 | 263
	CVTPS2PD Inst = 161<<21 | 2<<16 | 264
	CVTPS2PI Inst = 162<<21 | 2<<16 | 266
	CVTSD2SI Inst = 163<<21 | 4<<16 | 268
	CVTSD2SS Inst = 164<<21 | 2<<16 | 272
	CVTSI2SD Inst = 165<<21 | 2<<16 | 274
	CVTSI2SS Inst = 166<<21 | 2<<16 | 276
	CVTSS2SD Inst = 167<<21 | 2<<16 | 278
	CVTSS2SI Inst = 168<<21 | 4<<16 | 280
	CVTTPD2DQ Inst = 169<<21 | 1<<16 | 284
	CVTTPD2PI Inst = 170<<21 | 1<<16 | 285
	CVTTPS2DQ Inst = 171<<21 | 1<<16 | 286
	CVTTPS2PI Inst = 172<<21 | 2<<16 | 287
	CVTTSD2SI Inst = 173<<21 | 4<<16 | 289
	CVTTSS2SI Inst = 174<<21 | 4<<16 | 293
	CWD Inst = 175<<21 | 1<<16 | 297
	CWDE Inst = 176<<21 | 1<<16 | 298
	DAA Inst = 177<<21 | 1<<16 | 299
	DAS Inst = 178<<21 | 1<<16 | 300
	DEC Inst = 179<<21 | 5<<16 | 301
	DIV Inst = 180<<21 | 2<<16 | 306
	DIVPD Inst = 181<<21 | 1<<16 | 308
	DIVPS Inst = 182<<21 | 1<<16 | 309
	DIVSD Inst = 183<<21 | 2<<16 | 310
	DIVSS Inst = 184<<21 | 2<<16 | 312
	DMINT Inst = 185<<21 | 1<<16 | 314
	DPPD Inst = 186<<21 | 2<<16 | 315
	DPPS Inst = 187<<21 | 2<<16 | 317
	EMMS Inst = 188<<21 | 1<<16 | 319
	ENTER Inst = 189<<21 | 1<<16 | 320
	EXTRACTPS Inst = 190<<21 | 2<<16 | 321
	EXTRQ Inst = 191<<21 | 2<<16 | 323
	F2XM1 Inst = 192<<21 | 1<<16 | 325
	FABS Inst = 193<<21 | 1<<16 | 326
	FADD Inst = 194<<21 | 7<<16 | 327
	FADDP Inst = 195<<21 | 3<<16 | 334
	FBLD Inst = 196<<21 | 1<<16 | 337
	FBSTP Inst = 197<<21 | 1<<16 | 338
	FCHS Inst = 198<<21 | 1<<16 | 339
	FCLEX Inst = 199<<21 | 1<<16 | 340
	FCMOVB Inst = 200<<21 | 3<<16 | 341
	FCMOVBE Inst = 201<<21 | 3<<16 | 344
	FCMOVE Inst = 202<<21 | 3<<16 | 347
	FCMOVNB Inst = 203<<21 | 3<<16 | 350
	FCMOVNBE Inst = 204<<21 | 3<<16 | 353
	FCMOVNE Inst = 205<<21 | 3<<16 | 356
	FCMOVNU Inst = 206<<21 | 3<<16 | 359
	FCMOVU Inst = 207<<21 | 3<<16 | 362
	FCOM Inst = 208<<21 | 5<<16 | 365
	FCOMI Inst = 209<<21 | 3<<16 | 370
	FCOMIP Inst = 210<<21 | 3<<16 | 373
	FCOMP Inst = 211<<21 | 5<<16 | 376
	FCOMPP Inst = 212<<21 | 1<<16 | 381
	FCOS Inst = 213<<21 | 1<<16 | 382
	FDECSTP Inst = 214<<21 | 1<<16 | 383
	FDISI Inst = 215<<21 | 1<<16 | 384
	FDIV Inst = 216<<21 | 7<<16 | 385
	FDIVP Inst = 217<<21 | 3<<16 | 392
	FDIVR Inst = 218<<21 | 7<<16 | 395
	FDIVRP Inst = 219<<21 | 3<<16 | 402
	FEMMS Inst = 220<<21 | 1<<16 | 405
	FENI Inst = 221<<21 | 1<<16 | 406
	FFREE Inst = 222<<21 | 2<<16 | 407
	FIADD Inst = 223<<21 | 2<<16 | 409
	FICOM Inst = 224<<21 | 2<<16 | 411
	FICOMP Inst = 225<<21 | 2<<16 | 413
	FIDIV Inst = 226<<21 | 2<<16 | 415
	FIDIVR Inst = 227<<21 | 2<<16 | 417
	FILD Inst = 228<<21 | 3<<16 | 419
	FIMUL Inst = 229<<21 | 2<<16 | 422
	FINCSTP Inst = 230<<21 | 1<<16 | 424
	FINIT Inst = 231<<21 | 1<<16 | 425
	FIST Inst = 232<<21 | 2<<16 | 426
	FISTP Inst = 233<<21 | 3<<16 | 428
	FISTTP Inst = 234<<21 | 3<<16 | 431
	FISUB Inst = 235<<21 | 2<<16 | 434
	FISUBR Inst = 236<<21 | 2<<16 | 436
	FLD Inst = 237<<21 | 5<<16 | 438
	FLD1 Inst = 238<<21 | 1<<16 | 443
	FLDCW Inst = 239<<21 | 1<<16 | 444
	FLDENV Inst = 240<<21 | 1<<16 | 445
	FLDL2E Inst = 241<<21 | 1<<16 | 446
	FLDL2T Inst = 242<<21 | 1<<16 | 447
	FLDLG2 Inst = 243<<21 | 1<<16 | 448
	FLDLN2 Inst = 244<<21 | 1<<16 | 449
	FLDPI Inst = 245<<21 | 1<<16 | 450
	FLDZ Inst = 246<<21 | 1<<16 | 451
	FMUL Inst = 247<<21 | 7<<16 | 452
	FMULP Inst = 248<<21 | 3<<16 | 459
	FNCLEX Inst = 249<<21 | 1<<16 | 462
	FNDISI Inst = 250<<21 | 1<<16 | 463
	FNENI Inst = 251<<21 | 1<<16 | 464
	FNINIT Inst = 252<<21 | 1<<16 | 465
	FNOP Inst = 253<<21 | 1<<16 | 466
	FNSAVE Inst = 254<<21 | 1<<16 | 467
	FNSTCW Inst = 255<<21 | 1<<16 | 468
	FNSTENV Inst = 256<<21 | 1<<16 | 469
	FNSTSW Inst = 257<<21 | 2<<16 | 470
	FPATAN Inst = 258<<21 | 1<<16 | 472
	FPREM Inst = 259<<21 | 1<<16 | 473
	FPREM1 Inst = 260<<21 | 1<<16 | 474
	FPTAN Inst = 261<<21 | 1<<16 | 475
	FRNDINT Inst = 262<<21 | 1<<16 | 476
	FRSTOR Inst = 263<<21 | 1<<16 | 477
	FSAVE Inst = 264<<21 | 1<<16 | 478
	FSCALE Inst = 265<<21 | 1<<16 | 479
	FSETPM Inst = 266<<21 | 1<<16 | 480
	FSIN Inst = 267<<21 | 1<<16 | 481
	FSINCOS Inst = 268<<21 | 1<<16 | 482
	FSQRT Inst = 269<<21 | 1<<16 | 483
	FST Inst = 270<<21 | 4<<16 | 484
	FSTCW Inst = 271<<21 | 1<<16 | 488
	FSTENV Inst = 272<<21 | 1<<16 | 489
	FSTP Inst = 273<<21 | 5<<16 | 490
	FSTSW Inst = 274<<21 | 2<<16 | 495
	FSUB Inst = 275<<21 | 7<<16 | 497
	FSUBP Inst = 276<<21 | 3<<16 | 504
	FSUBR Inst = 277<<21 | 7<<16 | 507
	FSUBRP Inst = 278<<21 | 3<<16 | 514
	FTST Inst = 279<<21 | 1<<16 | 517
	FUCOM Inst = 280<<21 | 3<<16 | 518
	FUCOMI Inst = 281<<21 | 3<<16 | 521
	FUCOMIP Inst = 282<<21 | 3<<16 | 524
	FUCOMP Inst = 283<<21 | 3<<16 | 527
	FUCOMPP Inst = 284<<21 | 1<<16 | 530
	FWAIT Inst = 285<<21 | 1<<16 | 531
	FXAM Inst = 286<<21 | 1<<16 | 532
	FXCH Inst = 287<<21 | 4<<16 | 533
	FXRSTOR Inst = 288<<21 | 1<<16 | 537
	FXRSTOR64 Inst = 289<<21 | 1<<16 | 538
	FXSAVE Inst = 290<<21 | 1<<16 | 539
	FXSAVE64 Inst = 291<<21 | 1<<16 | 540
	FXTRACT Inst = 292<<21 | 1<<16 | 541
	FYL2X Inst = 293<<21 | 1<<16 | 542
	FYL2XP1 Inst = 294<<21 | 1<<16 | 543
	GETSEC Inst = 295<<21 | 1<<16 | 544
	HADDPD Inst = 296<<21 | 1<<16 | 545
	HADDPS Inst = 297<<21 | 1<<16 | 546
	HLT Inst = 298<<21 | 1<<16 | 547
	HSUBPD Inst = 299<<21 | 1<<16 | 548
	HSUBPS Inst = 300<<21 | 1<<16 | 549
	ICEBP Inst = 301<<21 | 1<<16 | 550
	IDIV Inst = 302<<21 | 2<<16 | 551
	IMUL Inst = 303<<21 | 5<<16 | 553
	IN Inst = 304<<21 | 6<<16 | 558
	INC Inst = 305<<21 | 5<<16 | 564
	INSB Inst = 306<<21 | 1<<16 | 569
	INSD Inst = 307<<21 | 1<<16 | 570
	INSERTPS Inst = 308<<21 | 2<<16 | 571
	INSERTQ Inst = 309<<21 | 2<<16 | 573
	INSW Inst = 310<<21 | 1<<16 | 575
	INT Inst = 311<<21 | 1<<16 | 576
	INT01 Inst = 312<<21 | 1<<16 | 577
	INT03 Inst = 313<<21 | 1<<16 | 578
	INT1 Inst = 314<<21 | 1<<16 | 579
	INT3 Inst = 315<<21 | 1<<16 | 580
	INTO Inst = 316<<21 | 1<<16 | 581
	INVD Inst = 317<<21 | 1<<16 | 582
	INVEPT Inst = 318<<21 | 1<<16 | 583
	INVLPG Inst = 319<<21 | 1<<16 | 584
	INVLPGA Inst = 320<<21 | 2<<16 | 585
	INVPCID Inst = 321<<21 | 1<<16 | 587
	INVVPID Inst = 322<<21 | 1<<16 | 588
	IRET Inst = 323<<21 | 1<<16 | 589
	IRETD Inst = 324<<21 | 1<<16 | 590
	IRETQ Inst = 325<<21 | 1<<16 | 591
	IRETW Inst = 326<<21 | 1<<16 | 592
	JA Inst = 327<<21 | 2<<16 | 593
	JAE Inst = 328<<21 | 2<<16 | 595
	JB Inst = 329<<21 | 2<<16 | 597
	JBE Inst = 330<<21 | 2<<16 | 599
	JC Inst = 331<<21 | 2<<16 | 601
	JE Inst = 332<<21 | 2<<16 | 603
	JECXZ Inst = 333<<21 | 1<<16 | 605
	JG Inst = 334<<21 | 2<<16 | 606
	JGE Inst = 335<<21 | 2<<16 | 608
	JL Inst = 336<<21 | 2<<16 | 610
	JLE Inst = 337<<21 | 2<<16 | 612
	JMP Inst = 338<<21 | 6<<16 | 614
	JMPF Inst = 339<<21 | 4<<16 | 620
	JNA Inst = 340<<21 | 2<<16 | 624
	JNAE Inst = 341<<21 | 2<<16 | 626
	JNB Inst = 342<<21 | 2<<16 | 628
	JNBE Inst = 343<<21 | 2<<16 | 630
	JNC Inst = 344<<21 | 2<<16 | 632
	JNE Inst = 345<<21 | 2<<16 | 634
	JNG Inst = 346<<21 | 2<<16 | 636
	JNGE Inst = 347<<21 | 2<<16 | 638
	JNL Inst = 348<<21 | 2<<16 | 640
	JNLE Inst = 349<<21 | 2<<16 | 642
	JNO Inst = 350<<21 | 2<<16 | 644
	JNP Inst = 351<<21 | 2<<16 | 646
	JNS Inst = 352<<21 | 2<<16 | 648
	JNZ Inst = 353<<21 | 2<<16 | 650
	JO Inst = 354<<21 | 2<<16 | 652
	JP Inst = 355<<21 | 2<<16 | 654
	JPE Inst = 356<<21 | 2<<16 | 656
	JPO Inst = 357<<21 | 2<<16 | 658
	JRCXZ Inst = 358<<21 | 1<<16 | 660
	JS Inst = 359<<21 | 2<<16 | 661
	JZ Inst = 360<<21 | 2<<16 | 663
	LAHF Inst = 361<<21 | 1<<16 | 665
	LAR Inst = 362<<21 | 2<<16 | 666
	LDDQU Inst = 363<<21 | 1<<16 | 668
	LDMXCSR Inst = 364<<21 | 1<<16 | 669
	LDS Inst = 365<<21 | 1<<16 | 670
	LEA Inst = 366<<21 | 1<<16 | 671
	LEAVE Inst = 367<<21 | 1<<16 | 672
	LES Inst = 368<<21 | 1<<16 | 673
	LFENCE Inst = 369<<21 | 1<<16 | 674
	LFS Inst = 370<<21 | 1<<16 | 675
	LGDT Inst = 371<<21 | 1<<16 | 676
	LGS Inst = 372<<21 | 1<<16 | 677
	LIDT Inst = 373<<21 | 1<<16 | 678
	LLDT Inst = 374<<21 | 2<<16 | 679
	LLWPCB Inst = 375<<21 | 1<<16 | 681
	LMSW Inst = 376<<21 | 2<<16 | 682
	LODSB Inst = 377<<21 | 1<<16 | 684
	LODSD Inst = 378<<21 | 1<<16 | 685
	LODSQ Inst = 379<<21 | 1<<16 | 686
	LODSW Inst = 380<<21 | 1<<16 | 687
	LOOP Inst = 381<<21 | 1<<16 | 688
	LOOPE Inst = 382<<21 | 1<<16 | 689
	LOOPNE Inst = 383<<21 | 1<<16 | 690
	LOOPNZ Inst = 384<<21 | 1<<16 | 691
	LOOPZ Inst = 385<<21 | 1<<16 | 692
	LSL Inst = 386<<21 | 2<<16 | 693
	LSS Inst = 387<<21 | 1<<16 | 695
	LTR Inst = 388<<21 | 2<<16 | 696
	LWPINS Inst = 389<<21 | 1<<16 | 698
	LWPVAL Inst = 390<<21 | 1<<16 | 699
	LZCNT Inst = 391<<21 | 1<<16 | 700
	MASKMOVDQU Inst = 392<<21 | 1<<16 | 701
	MASKMOVQ Inst = 393<<21 | 1<<16 | 702
	MAXPD Inst = 394<<21 | 1<<16 | 703
	MAXPS Inst = 395<<21 | 1<<16 | 704
	MAXSD Inst = 396<<21 | 2<<16 | 705
	MAXSS Inst = 397<<21 | 2<<16 | 707
	MFENCE Inst = 398<<21 | 1<<16 | 709
	MINPD Inst = 399<<21 | 1<<16 | 710
	MINPS Inst = 400<<21 | 1<<16 | 711
	MINSD Inst = 401<<21 | 2<<16 | 712
	MINSS Inst = 402<<21 | 2<<16 | 714
	MONITOR Inst = 403<<21 | 2<<16 | 716
	MONITORX Inst = 404<<21 | 2<<16 | 718
	MONTMUL Inst = 405<<21 | 1<<16 | 720
	MOV Inst = 406<<21 | 26<<16 | 721
	MOVABS Inst = 407<<21 | 8<<16 | 747
	MOVAPD Inst = 408<<21 | 4<<16 | 755
	MOVAPS Inst = 409<<21 | 2<<16 | 759
	MOVBE Inst = 410<<21 | 2<<16 | 761
	MOVD Inst = 411<<21 | 8<<16 | 763
	MOVDDUP Inst = 412<<21 | 2<<16 | 771
	MOVDQ2Q Inst = 413<<21 | 1<<16 | 773
	MOVDQA Inst = 414<<21 | 4<<16 | 774
	MOVDQU Inst = 415<<21 | 4<<16 | 778
	MOVHLPS Inst = 416<<21 | 1<<16 | 782
	MOVHPD Inst = 417<<21 | 2<<16 | 783
	MOVHPS Inst = 418<<21 | 2<<16 | 785
	MOVLHPS Inst = 419<<21 | 1<<16 | 787
	MOVLPD Inst = 420<<21 | 2<<16 | 788
	MOVLPS Inst = 421<<21 | 2<<16 | 790
	MOVMSKPD Inst = 422<<21 | 2<<16 | 792
	MOVMSKPS Inst = 423<<21 | 2<<16 | 794
	MOVNTDQ Inst = 424<<21 | 1<<16 | 796
	MOVNTDQA Inst = 425<<21 | 1<<16 | 797
	MOVNTI Inst = 426<<21 | 2<<16 | 798
	MOVNTPD Inst = 427<<21 | 1<<16 | 800
	MOVNTPS Inst = 428<<21 | 1<<16 | 801
	MOVNTQ Inst = 429<<21 | 1<<16 | 802
	MOVNTSD Inst = 430<<21 | 1<<16 | 803
	MOVNTSS Inst = 431<<21 | 1<<16 | 804
	MOVQ Inst = 432<<21 | 10<<16 | 805
	MOVQ2DQ Inst = 433<<21 | 1<<16 | 815
	MOVSB Inst = 434<<21 | 1<<16 | 816
	MOVSD Inst = 435<<21 | 5<<16 | 817
	MOVSHDUP Inst = 436<<21 | 2<<16 | 822
	MOVSLDUP Inst = 437<<21 | 2<<16 | 824
	MOVSQ Inst = 438<<21 | 1<<16 | 826
	MOVSS Inst = 439<<21 | 3<<16 | 827
	MOVSW Inst = 440<<21 | 1<<16 | 830
	MOVSX Inst = 441<<21 | 4<<16 | 831
	MOVSXD Inst = 442<<21 | 1<<16 | 835
	MOVUPD Inst = 443<<21 | 4<<16 | 836
	MOVUPS Inst = 444<<21 | 2<<16 | 840
	MOVZX Inst = 445<<21 | 3<<16 | 842
	MPSADBW Inst = 446<<21 | 2<<16 | 845
	MUL Inst = 447<<21 | 2<<16 | 847
	MULPD Inst = 448<<21 | 1<<16 | 849
	MULPS Inst = 449<<21 | 1<<16 | 850
	MULSD Inst = 450<<21 | 2<<16 | 851
	MULSS Inst = 451<<21 | 2<<16 | 853
	MULX Inst = 452<<21 | 1<<16 | 855
	MWAIT Inst = 453<<21 | 2<<16 | 856
	MWAITX Inst = 454<<21 | 2<<16 | 858
	NEG Inst = 455<<21 | 4<<16 | 860
	NOP Inst = 456<<21 | 2<<16 | 864
	NOT Inst = 457<<21 | 4<<16 | 866
	OR Inst = 458<<21 | 14<<16 | 870
	ORPD Inst = 459<<21 | 1<<16 | 884
	ORPS Inst = 460<<21 | 1<<16 | 885
	OUT Inst = 461<<21 | 6<<16 | 886
	OUTSB Inst = 462<<21 | 1<<16 | 892
	OUTSD Inst = 463<<21 | 1<<16 | 893
	OUTSW Inst = 464<<21 | 1<<16 | 894
	PABSB Inst = 465<<21 | 3<<16 | 895
	PABSD Inst = 466<<21 | 3<<16 | 898
	PABSW Inst = 467<<21 | 3<<16 | 901
	PACKSSDW Inst = 468<<21 | 2<<16 | 904
	PACKSSWB Inst = 469<<21 | 2<<16 | 906
	PACKUSDW Inst = 470<<21 | 2<<16 | 908
	PACKUSWB Inst = 471<<21 | 2<<16 | 910
	PADDB Inst = 472<<21 | 2<<16 | 912
	PADDD Inst = 473<<21 | 2<<16 | 914
	PADDQ Inst = 474<<21 | 2<<16 | 916
	PADDSB Inst = 475<<21 | 2<<16 | 918
	PADDSIW Inst = 476<<21 | 1<<16 | 920
	PADDSW Inst = 477<<21 | 2<<16 | 921
	PADDUSB Inst = 478<<21 | 2<<16 | 923
	PADDUSW Inst = 479<<21 | 2<<16 | 925
	PADDW Inst = 480<<21 | 2<<16 | 927
	PALIGNR Inst = 481<<21 | 3<<16 | 929
	PAND Inst = 482<<21 | 2<<16 | 932
	PANDN Inst = 483<<21 | 2<<16 | 934
	PAUSE Inst = 484<<21 | 1<<16 | 936
	PAVEB Inst = 485<<21 | 1<<16 | 937
	PAVGB Inst = 486<<21 | 2<<16 | 938
	PAVGUSB Inst = 487<<21 | 1<<16 | 940
	PAVGW Inst = 488<<21 | 2<<16 | 941
	PBLENDVB Inst = 489<<21 | 2<<16 | 943
	PBLENDW Inst = 490<<21 | 2<<16 | 945
	PCLMULHQHQDQ Inst = 491<<21 | 1<<16 | 947
	PCLMULHQLQDQ Inst = 492<<21 | 1<<16 | 948
	PCLMULLQHQDQ Inst = 493<<21 | 1<<16 | 949
	PCLMULLQLQDQ Inst = 494<<21 | 1<<16 | 950
	PCLMULQDQ Inst = 495<<21 | 1<<16 | 951
	PCMPEQB Inst = 496<<21 | 2<<16 | 952
	PCMPEQD Inst = 497<<21 | 2<<16 | 954
	PCMPEQQ Inst = 498<<21 | 2<<16 | 956
	PCMPEQW Inst = 499<<21 | 2<<16 | 958
	PCMPESTRI Inst = 500<<21 | 2<<16 | 960
	PCMPESTRM Inst = 501<<21 | 2<<16 | 962
	PCMPGTB Inst = 502<<21 | 2<<16 | 964
	PCMPGTD Inst = 503<<21 | 2<<16 | 966
	PCMPGTQ Inst = 504<<21 | 2<<16 | 968
	PCMPGTW Inst = 505<<21 | 2<<16 | 970
	PCMPISTRI Inst = 506<<21 | 2<<16 | 972
	PCMPISTRM Inst = 507<<21 | 2<<16 | 974
	PDEP Inst = 508<<21 | 1<<16 | 976
	PDISTIB Inst = 509<<21 | 1<<16 | 977
	PEXT Inst = 510<<21 | 1<<16 | 978
	PEXTRB Inst = 511<<21 | 3<<16 | 979
	PEXTRD Inst = 512<<21 | 1<<16 | 982
	PEXTRQ Inst = 513<<21 | 1<<16 | 983
	PEXTRW Inst = 514<<21 | 5<<16 | 984
	PF2ID Inst = 515<<21 | 1<<16 | 989
	PF2IW Inst = 516<<21 | 1<<16 | 990
	PFACC Inst = 517<<21 | 1<<16 | 991
	PFADD Inst = 518<<21 | 1<<16 | 992
	PFCMPEQ Inst = 519<<21 | 1<<16 | 993
	PFCMPGE Inst = 520<<21 | 1<<16 | 994
	PFCMPGT Inst = 521<<21 | 1<<16 | 995
	PFMAX Inst = 522<<21 | 1<<16 | 996
	PFMIN Inst = 523<<21 | 1<<16 | 997
	PFMUL Inst = 524<<21 | 1<<16 | 998
	PFNACC Inst = 525<<21 | 1<<16 | 999
	PFPNACC Inst = 526<<21 | 1<<16 | 1000
	PFRCP Inst = 527<<21 | 1<<16 | 1001
	PFRCPIT1 Inst = 528<<21 | 1<<16 | 1002
	PFRCPIT2 Inst = 529<<21 | 1<<16 | 1003
	PFRCPV Inst = 530<<21 | 1<<16 | 1004
	PFRSQIT1 Inst = 531<<21 | 1<<16 | 1005
	PFRSQRT Inst = 532<<21 | 1<<16 | 1006
	PFRSQRTV Inst = 533<<21 | 1<<16 | 1007
	PFSUB Inst = 534<<21 | 1<<16 | 1008
	PFSUBR Inst = 535<<21 | 1<<16 | 1009
	PHADDD Inst = 536<<21 | 3<<16 | 1010
	PHADDSW Inst = 537<<21 | 3<<16 | 1013
	PHADDW Inst = 538<<21 | 3<<16 | 1016
	PHMINPOSUW Inst = 539<<21 | 2<<16 | 1019
	PHSUBD Inst = 540<<21 | 3<<16 | 1021
	PHSUBSW Inst = 541<<21 | 3<<16 | 1024
	PHSUBW Inst = 542<<21 | 3<<16 | 1027
	PI2FD Inst = 543<<21 | 1<<16 | 1030
	PI2FW Inst = 544<<21 | 1<<16 | 1031
	PINSRB Inst = 545<<21 | 3<<16 | 1032
	PINSRD Inst = 546<<21 | 2<<16 | 1035
	PINSRQ Inst = 547<<21 | 2<<16 | 1037
	PINSRW Inst = 548<<21 | 7<<16 | 1039
	PMACHRIW Inst = 549<<21 | 1<<16 | 1046
	PMADDUBSW Inst = 550<<21 | 3<<16 | 1047
	PMADDWD Inst = 551<<21 | 2<<16 | 1050
	PMAGW Inst = 552<<21 | 1<<16 | 1052
	PMAXSB Inst = 553<<21 | 2<<16 | 1053
	PMAXSD Inst = 554<<21 | 2<<16 | 1055
	PMAXSW Inst = 555<<21 | 2<<16 | 1057
	PMAXUB Inst = 556<<21 | 2<<16 | 1059
	PMAXUD Inst = 557<<21 | 2<<16 | 1061
	PMAXUW Inst = 558<<21 | 2<<16 | 1063
	PMINSB Inst = 559<<21 | 2<<16 | 1065
	PMINSD Inst = 560<<21 | 2<<16 | 1067
	PMINSW Inst = 561<<21 | 2<<16 | 1069
	PMINUB Inst = 562<<21 | 2<<16 | 1071
	PMINUD Inst = 563<<21 | 2<<16 | 1073
	PMINUW Inst = 564<<21 | 2<<16 | 1075
	PMOVMSKB Inst = 565<<21 | 2<<16 | 1077
	PMOVSXBD Inst = 566<<21 | 2<<16 | 1079
	PMOVSXBQ Inst = 567<<21 | 2<<16 | 1081
	PMOVSXBW Inst = 568<<21 | 2<<16 | 1083
	PMOVSXDQ Inst = 569<<21 | 2<<16 | 1085
	PMOVSXWD Inst = 570<<21 | 2<<16 | 1087
	PMOVSXWQ Inst = 571<<21 | 2<<16 | 1089
	PMOVZXBD Inst = 572<<21 | 2<<16 | 1091
	PMOVZXBQ Inst = 573<<21 | 2<<16 | 1093
	PMOVZXBW Inst = 574<<21 | 2<<16 | 1095
	PMOVZXDQ Inst = 575<<21 | 2<<16 | 1097
	PMOVZXWD Inst = 576<<21 | 2<<16 | 1099
	PMOVZXWQ Inst = 577<<21 | 2<<16 | 1101
	PMULDQ Inst = 578<<21 | 2<<16 | 1103
	PMULHRIW Inst = 579<<21 | 1<<16 | 1105
	PMULHRSW Inst = 580<<21 | 3<<16 | 1106
	PMULHRWA Inst = 581<<21 | 1<<16 | 1109
	PMULHRWC Inst = 582<<21 | 1<<16 | 1110
	PMULHUW Inst = 583<<21 | 2<<16 | 1111
	PMULHW Inst = 584<<21 | 2<<16 | 1113
	PMULLD Inst = 585<<21 | 2<<16 | 1115
	PMULLW Inst = 586<<21 | 2<<16 | 1117
	PMULUDQ Inst = 587<<21 | 2<<16 | 1119
	PMVGEZB Inst = 588<<21 | 1<<16 | 1121
	PMVLZB Inst = 589<<21 | 1<<16 | 1122
	PMVNZB Inst = 590<<21 | 1<<16 | 1123
	PMVZB Inst = 591<<21 | 1<<16 | 1124
	POP Inst = 592<<21 | 7<<16 | 1125
	POPA Inst = 593<<21 | 1<<16 | 1132
	POPAD Inst = 594<<21 | 1<<16 | 1133
	POPCNT Inst = 595<<21 | 1<<16 | 1134
	POPF Inst = 596<<21 | 1<<16 | 1135
	POPFQ Inst = 597<<21 | 1<<16 | 1136
	POPFW Inst = 598<<21 | 1<<16 | 1137
	POR Inst = 599<<21 | 2<<16 | 1138
	PREFETCH Inst = 600<<21 | 1<<16 | 1140
	PREFETCHNTA Inst = 601<<21 | 1<<16 | 1141
	PREFETCHT0 Inst = 602<<21 | 1<<16 | 1142
	PREFETCHT1 Inst = 603<<21 | 1<<16 | 1143
	PREFETCHT2 Inst = 604<<21 | 1<<16 | 1144
	PREFETCHW Inst = 605<<21 | 1<<16 | 1145
	PREFETCHWT1 Inst = 606<<21 | 1<<16 | 1146
	PSADBW Inst = 607<<21 | 2<<16 | 1147
	PSHUFB Inst = 608<<21 | 3<<16 | 1149
	PSHUFD Inst = 609<<21 | 1<<16 | 1152
	PSHUFHW Inst = 610<<21 | 1<<16 | 1153
	PSHUFLW Inst = 611<<21 | 1<<16 | 1154
	PSHUFW Inst = 612<<21 | 1<<16 | 1155
	PSIGNB Inst = 613<<21 | 3<<16 | 1156
	PSIGND Inst = 614<<21 | 3<<16 | 1159
	PSIGNW Inst = 615<<21 | 3<<16 | 1162
	PSLLD Inst = 616<<21 | 4<<16 | 1165
	PSLLDQ Inst = 617<<21 | 1<<16 | 1169
	PSLLQ Inst = 618<<21 | 4<<16 | 1170
	PSLLW Inst = 619<<21 | 4<<16 | 1174
	PSRAD Inst = 620<<21 | 4<<16 | 1178
	PSRAW Inst = 621<<21 | 4<<16 | 1182
	PSRLD Inst = 622<<21 | 4<<16 | 1186
	PSRLDQ Inst = 623<<21 | 1<<16 | 1190
	PSRLQ Inst = 624<<21 | 4<<16 | 1191
	PSRLW Inst = 625<<21 | 4<<16 | 1195
	PSUBB Inst = 626<<21 | 2<<16 | 1199
	PSUBD Inst = 627<<21 | 2<<16 | 1201
	PSUBQ Inst = 628<<21 | 2<<16 | 1203
	PSUBSB Inst = 629<<21 | 2<<16 | 1205
	PSUBSIW Inst = 630<<21 | 1<<16 | 1207
	PSUBSW Inst = 631<<21 | 2<<16 | 1208
	PSUBUSB Inst = 632<<21 | 2<<16 | 1210
	PSUBUSW Inst = 633<<21 | 2<<16 | 1212
	PSUBW Inst = 634<<21 | 2<<16 | 1214
	PSWAPD Inst = 635<<21 | 1<<16 | 1216
	PTEST Inst = 636<<21 | 2<<16 | 1217
	PUNPCKHBW Inst = 637<<21 | 2<<16 | 1219
	PUNPCKHDQ Inst = 638<<21 | 2<<16 | 1221
	PUNPCKHQDQ Inst = 639<<21 | 1<<16 | 1223
	PUNPCKHWD Inst = 640<<21 | 2<<16 | 1224
	PUNPCKLBW Inst = 641<<21 | 2<<16 | 1226
	PUNPCKLDQ Inst = 642<<21 | 2<<16 | 1228
	PUNPCKLQDQ Inst = 643<<21 | 1<<16 | 1230
	PUNPCKLWD Inst = 644<<21 | 2<<16 | 1231
	PUSH Inst = 645<<21 | 11<<16 | 1233
	PUSHA Inst = 646<<21 | 1<<16 | 1244
	PUSHAD Inst = 647<<21 | 1<<16 | 1245
	PUSHF Inst = 648<<21 | 1<<16 | 1246
	PUSHFQ Inst = 649<<21 | 1<<16 | 1247
	PUSHFW Inst = 650<<21 | 1<<16 | 1248
	PXOR Inst = 651<<21 | 2<<16 | 1249
	RCL Inst = 652<<21 | 4<<16 | 1251
	RCPPS Inst = 653<<21 | 1<<16 | 1255
	RCPSS Inst = 654<<21 | 2<<16 | 1256
	RCR Inst = 655<<21 | 4<<16 | 1258
	RDFSBASE Inst = 656<<21 | 2<<16 | 1262
	RDGSBASE Inst = 657<<21 | 2<<16 | 1264
	RDM Inst = 658<<21 | 1<<16 | 1266
	RDMSR Inst = 659<<21 | 1<<16 | 1267
	RDPID Inst = 660<<21 | 1<<16 | 1268
	RDPKRU Inst = 661<<21 | 1<<16 | 1269
	RDPMC Inst = 662<<21 | 1<<16 | 1270
	RDRAND Inst = 663<<21 | 1<<16 | 1271
	RDSEED Inst = 664<<21 | 1<<16 | 1272
	RDSHR Inst = 665<<21 | 1<<16 | 1273
	RDTSC Inst = 666<<21 | 1<<16 | 1274
	RDTSCP Inst = 667<<21 | 1<<16 | 1275
	RET Inst = 668<<21 | 2<<16 | 1276
	RETF Inst = 669<<21 | 2<<16 | 1278
	RETN Inst = 670<<21 | 2<<16 | 1280
	ROL Inst = 671<<21 | 4<<16 | 1282
	ROR Inst = 672<<21 | 4<<16 | 1286
	RORX Inst = 673<<21 | 1<<16 | 1290
	ROUNDPD Inst = 674<<21 | 2<<16 | 1291
	ROUNDPS Inst = 675<<21 | 2<<16 | 1293
	ROUNDSD Inst = 676<<21 | 2<<16 | 1295
	ROUNDSS Inst = 677<<21 | 2<<16 | 1297
	RSDC Inst = 678<<21 | 1<<16 | 1299
	RSLDT Inst = 679<<21 | 1<<16 | 1300
	RSM Inst = 680<<21 | 1<<16 | 1301
	RSQRTPS Inst = 681<<21 | 1<<16 | 1302
	RSQRTSS Inst = 682<<21 | 2<<16 | 1303
	RSTS Inst = 683<<21 | 1<<16 | 1305
	SAHF Inst = 684<<21 | 1<<16 | 1306
	SAL Inst = 685<<21 | 4<<16 | 1307
	SAR Inst = 686<<21 | 4<<16 | 1311
	SARX Inst = 687<<21 | 1<<16 | 1315
	SBB Inst = 688<<21 | 14<<16 | 1316
	SCASB Inst = 689<<21 | 1<<16 | 1330
	SCASD Inst = 690<<21 | 1<<16 | 1331
	SCASQ Inst = 691<<21 | 1<<16 | 1332
	SCASW Inst = 692<<21 | 1<<16 | 1333
	SETA Inst = 693<<21 | 1<<16 | 1334
	SETAE Inst = 694<<21 | 1<<16 | 1335
	SETB Inst = 695<<21 | 1<<16 | 1336
	SETBE Inst = 696<<21 | 1<<16 | 1337
	SETC Inst = 697<<21 | 1<<16 | 1338
	SETE Inst = 698<<21 | 1<<16 | 1339
	SETG Inst = 699<<21 | 1<<16 | 1340
	SETGE Inst = 700<<21 | 1<<16 | 1341
	SETL Inst = 701<<21 | 1<<16 | 1342
	SETLE Inst = 702<<21 | 1<<16 | 1343
	SETNA Inst = 703<<21 | 1<<16 | 1344
	SETNAE Inst = 704<<21 | 1<<16 | 1345
	SETNB Inst = 705<<21 | 1<<16 | 1346
	SETNBE Inst = 706<<21 | 1<<16 | 1347
	SETNC Inst = 707<<21 | 1<<16 | 1348
	SETNE Inst = 708<<21 | 1<<16 | 1349
	SETNG Inst = 709<<21 | 1<<16 | 1350
	SETNGE Inst = 710<<21 | 1<<16 | 1351
	SETNL Inst = 711<<21 | 1<<16 | 1352
	SETNLE Inst = 712<<21 | 1<<16 | 1353
	SETNO Inst = 713<<21 | 1<<16 | 1354
	SETNP Inst = 714<<21 | 1<<16 | 1355
	SETNS Inst = 715<<21 | 1<<16 | 1356
	SETNZ Inst = 716<<21 | 1<<16 | 1357
	SETO Inst = 717<<21 | 1<<16 | 1358
	SETP Inst = 718<<21 | 1<<16 | 1359
	SETPE Inst = 719<<21 | 1<<16 | 1360
	SETPO Inst = 720<<21 | 1<<16 | 1361
	SETS Inst = 721<<21 | 1<<16 | 1362
	SETZ Inst = 722<<21 | 1<<16 | 1363
	SFENCE Inst = 723<<21 | 1<<16 | 1364
	SGDT Inst = 724<<21 | 1<<16 | 1365
	SHA1MSG1 Inst = 725<<21 | 1<<16 | 1366
	SHA1MSG2 Inst = 726<<21 | 1<<16 | 1367
	SHA1NEXTE Inst = 727<<21 | 1<<16 | 1368
	SHA1RNDS4 Inst = 728<<21 | 1<<16 | 1369
	SHA256MSG1 Inst = 729<<21 | 1<<16 | 1370
	SHA256MSG2 Inst = 730<<21 | 1<<16 | 1371
	SHA256RNDS2 Inst = 731<<21 | 1<<16 | 1372
	SHL Inst = 732<<21 | 4<<16 | 1373
	SHLD Inst = 733<<21 | 2<<16 | 1377
	SHLX Inst = 734<<21 | 1<<16 | 1379
	SHR Inst = 735<<21 | 4<<16 | 1380
	SHRD Inst = 736<<21 | 2<<16 | 1384
	SHRX Inst = 737<<21 | 1<<16 | 1386
	SHUFPD Inst = 738<<21 | 1<<16 | 1387
	SHUFPS Inst = 739<<21 | 1<<16 | 1388
	SIDT Inst = 740<<21 | 1<<16 | 1389
	SKINIT Inst = 741<<21 | 1<<16 | 1390
	SLDT Inst = 742<<21 | 2<<16 | 1391
	SLWPCB Inst = 743<<21 | 1<<16 | 1393
	SMINT Inst = 744<<21 | 1<<16 | 1394
	SMSW Inst = 745<<21 | 2<<16 | 1395
	SQRTPD Inst = 746<<21 | 1<<16 | 1397
	SQRTPS Inst = 747<<21 | 1<<16 | 1398
	SQRTSD Inst = 748<<21 | 2<<16 | 1399
	SQRTSS Inst = 749<<21 | 2<<16 | 1401
	STAC Inst = 750<<21 | 1<<16 | 1403
	STC Inst = 751<<21 | 1<<16 | 1404
	STD Inst = 752<<21 | 1<<16 | 1405
	STGI Inst = 753<<21 | 1<<16 | 1406
	STI Inst = 754<<21 | 1<<16 | 1407
	STMXCSR Inst = 755<<21 | 1<<16 | 1408
	STOSB Inst = 756<<21 | 1<<16 | 1409
	STOSD Inst = 757<<21 | 1<<16 | 1410
	STOSQ Inst = 758<<21 | 1<<16 | 1411
	STOSW Inst = 759<<21 | 1<<16 | 1412
	STR Inst = 760<<21 | 2<<16 | 1413
	SUB Inst = 761<<21 | 14<<16 | 1415
	SUBPD Inst = 762<<21 | 1<<16 | 1429
	SUBPS Inst = 763<<21 | 1<<16 | 1430
	SUBSD Inst = 764<<21 | 2<<16 | 1431
	SUBSS Inst = 765<<21 | 2<<16 | 1433
	SVDC Inst = 766<<21 | 1<<16 | 1435
	SVLDT Inst = 767<<21 | 1<<16 | 1436
	SVTS Inst = 768<<21 | 1<<16 | 1437
	SWAPGS Inst = 769<<21 | 1<<16 | 1438
	SYSCALL Inst = 770<<21 | 1<<16 | 1439
	SYSENTER Inst = 771<<21 | 1<<16 | 1440
	SYSEXIT Inst = 772<<21 | 1<<16 | 1441
	SYSRET Inst = 773<<21 | 1<<16 | 1442
	T1MSKC Inst = 774<<21 | 1<<16 | 1443
	TEST Inst = 775<<21 | 8<<16 | 1444
	TZCNT Inst = 776<<21 | 1<<16 | 1452
	TZMSK Inst = 777<<21 | 1<<16 | 1453
	UCOMISD Inst = 778<<21 | 2<<16 | 1454
	UCOMISS Inst = 779<<21 | 2<<16 | 1456
	UD2 Inst = 780<<21 | 1<<16 | 1458
	UD2A Inst = 781<<21 | 1<<16 | 1459
	UNPCKHPD Inst = 782<<21 | 1<<16 | 1460
	UNPCKHPS Inst = 783<<21 | 1<<16 | 1461
	UNPCKLPD Inst = 784<<21 | 1<<16 | 1462
	UNPCKLPS Inst = 785<<21 | 1<<16 | 1463
	VADDPD Inst = 786<<21 | 1<<16 | 1464
	VADDPS Inst = 787<<21 | 1<<16 | 1465
	VADDSD Inst = 788<<21 | 2<<16 | 1466
	VADDSS Inst = 789<<21 | 2<<16 | 1468
	VADDSUBPD Inst = 790<<21 | 1<<16 | 1470
	VADDSUBPS Inst = 791<<21 | 1<<16 | 1471
	VAESDEC Inst = 792<<21 | 1<<16 | 1472
	VAESDECLAST Inst = 793<<21 | 1<<16 | 1473
	VAESENC Inst = 794<<21 | 1<<16 | 1474
	VAESENCLAST Inst = 795<<21 | 1<<16 | 1475
	VAESIMC Inst = 796<<21 | 1<<16 | 1476
	VAESKEYGENASSIST Inst = 797<<21 | 1<<16 | 1477
	VANDNPD Inst = 798<<21 | 1<<16 | 1478
	VANDNPS Inst = 799<<21 | 1<<16 | 1479
	VANDPD Inst = 800<<21 | 1<<16 | 1480
	VANDPS Inst = 801<<21 | 1<<16 | 1481
	VBLENDPD Inst = 802<<21 | 1<<16 | 1482
	VBLENDPS Inst = 803<<21 | 1<<16 | 1483
	VBLENDVPD Inst = 804<<21 | 1<<16 | 1484
	VBLENDVPS Inst = 805<<21 | 1<<16 | 1485
	VBROADCASTF128 Inst = 806<<21 | 1<<16 | 1486
	VBROADCASTI128 Inst = 807<<21 | 1<<16 | 1487
	VBROADCASTSD Inst = 808<<21 | 2<<16 | 1488
	VBROADCASTSS Inst = 809<<21 | 2<<16 | 1490
	VCMPEQ_OSPD Inst = 810<<21 | 2<<16 | 1492
	VCMPEQ_OSPS Inst = 811<<21 | 1<<16 | 1494
	VCMPEQ_OSSD Inst = 812<<21 | 2<<16 | 1495
	VCMPEQ_OSSS Inst = 813<<21 | 2<<16 | 1497
	VCMPEQ_UQPD Inst = 814<<21 | 2<<16 | 1499
	VCMPEQ_UQPS Inst = 815<<21 | 1<<16 | 1501
	VCMPEQ_UQSD Inst = 816<<21 | 2<<16 | 1502
	VCMPEQ_UQSS Inst = 817<<21 | 2<<16 | 1504
	VCMPEQ_USPD Inst = 818<<21 | 2<<16 | 1506
	VCMPEQ_USPS Inst = 819<<21 | 1<<16 | 1508
	VCMPEQ_USSD Inst = 820<<21 | 2<<16 | 1509
	VCMPEQ_USSS Inst = 821<<21 | 2<<16 | 1511
	VCMPEQPD Inst = 822<<21 | 1<<16 | 1513
	VCMPEQPS Inst = 823<<21 | 1<<16 | 1514
	VCMPEQSD Inst = 824<<21 | 2<<16 | 1515
	VCMPEQSS Inst = 825<<21 | 2<<16 | 1517
	VCMPFALSE_OQPD Inst = 826<<21 | 1<<16 | 1519
	VCMPFALSE_OQPS Inst = 827<<21 | 1<<16 | 1520
	VCMPFALSE_OQSD Inst = 828<<21 | 2<<16 | 1521
	VCMPFALSE_OQSS Inst = 829<<21 | 2<<16 | 1523
	VCMPFALSE_OSPD Inst = 830<<21 | 1<<16 | 1525
	VCMPFALSE_OSPS Inst = 831<<21 | 1<<16 | 1526
	VCMPFALSE_OSSD Inst = 832<<21 | 2<<16 | 1527
	VCMPFALSE_OSSS Inst = 833<<21 | 2<<16 | 1529
	VCMPFALSEPD Inst = 834<<21 | 2<<16 | 1531
	VCMPFALSEPS Inst = 835<<21 | 1<<16 | 1533
	VCMPFALSESD Inst = 836<<21 | 2<<16 | 1534
	VCMPFALSESS Inst = 837<<21 | 2<<16 | 1536
	VCMPGE_OQPD Inst = 838<<21 | 2<<16 | 1538
	VCMPGE_OQPS Inst = 839<<21 | 1<<16 | 1540
	VCMPGE_OQSD Inst = 840<<21 | 2<<16 | 1541
	VCMPGE_OQSS Inst = 841<<21 | 2<<16 | 1543
	VCMPGE_OSPD Inst = 842<<21 | 1<<16 | 1545
	VCMPGE_OSPS Inst = 843<<21 | 1<<16 | 1546
	VCMPGE_OSSD Inst = 844<<21 | 2<<16 | 1547
	VCMPGE_OSSS Inst = 845<<21 | 2<<16 | 1549
	VCMPGEPD Inst = 846<<21 | 1<<16 | 1551
	VCMPGEPS Inst = 847<<21 | 1<<16 | 1552
	VCMPGESD Inst = 848<<21 | 2<<16 | 1553
	VCMPGESS Inst = 849<<21 | 2<<16 | 1555
	VCMPGT_OQPD Inst = 850<<21 | 1<<16 | 1557
	VCMPGT_OQPS Inst = 851<<21 | 1<<16 | 1558
	VCMPGT_OQSD Inst = 852<<21 | 2<<16 | 1559
	VCMPGT_OQSS Inst = 853<<21 | 2<<16 | 1561
	VCMPGT_OSPD Inst = 854<<21 | 1<<16 | 1563
	VCMPGT_OSPS Inst = 855<<21 | 1<<16 | 1564
	VCMPGT_OSSD Inst = 856<<21 | 2<<16 | 1565
	VCMPGT_OSSS Inst = 857<<21 | 2<<16 | 1567
	VCMPGTPD Inst = 858<<21 | 2<<16 | 1569
	VCMPGTPS Inst = 859<<21 | 1<<16 | 1571
	VCMPGTSD Inst = 860<<21 | 2<<16 | 1572
	VCMPGTSS Inst = 861<<21 | 2<<16 | 1574
	VCMPLE_OQPD Inst = 862<<21 | 2<<16 | 1576
	VCMPLE_OQPS Inst = 863<<21 | 1<<16 | 1578
	VCMPLE_OQSD Inst = 864<<21 | 2<<16 | 1579
	VCMPLE_OQSS Inst = 865<<21 | 2<<16 | 1581
	VCMPLE_OSPD Inst = 866<<21 | 1<<16 | 1583
	VCMPLE_OSPS Inst = 867<<21 | 1<<16 | 1584
	VCMPLE_OSSD Inst = 868<<21 | 2<<16 | 1585
	VCMPLE_OSSS Inst = 869<<21 | 2<<16 | 1587
	VCMPLEPD Inst = 870<<21 | 2<<16 | 1589
	VCMPLEPS Inst = 871<<21 | 1<<16 | 1591
	VCMPLESD Inst = 872<<21 | 2<<16 | 1592
	VCMPLESS Inst = 873<<21 | 2<<16 | 1594
	VCMPLT_OQPD Inst = 874<<21 | 1<<16 | 1596
	VCMPLT_OQPS Inst = 875<<21 | 1<<16 | 1597
	VCMPLT_OQSD Inst = 876<<21 | 2<<16 | 1598
	VCMPLT_OQSS Inst = 877<<21 | 2<<16 | 1600
	VCMPLT_OSPD Inst = 878<<21 | 2<<16 | 1602
	VCMPLT_OSPS Inst = 879<<21 | 1<<16 | 1604
	VCMPLT_OSSD Inst = 880<<21 | 2<<16 | 1605
	VCMPLT_OSSS Inst = 881<<21 | 2<<16 | 1607
	VCMPLTPD Inst = 882<<21 | 2<<16 | 1609
	VCMPLTPS Inst = 883<<21 | 1<<16 | 1611
	VCMPLTSD Inst = 884<<21 | 2<<16 | 1612
	VCMPLTSS Inst = 885<<21 | 2<<16 | 1614
	VCMPNEQ_OQPD Inst = 886<<21 | 2<<16 | 1616
	VCMPNEQ_OQPS Inst = 887<<21 | 1<<16 | 1618
	VCMPNEQ_OQSD Inst = 888<<21 | 2<<16 | 1619
	VCMPNEQ_OQSS Inst = 889<<21 | 2<<16 | 1621
	VCMPNEQ_OSPD Inst = 890<<21 | 2<<16 | 1623
	VCMPNEQ_OSPS Inst = 891<<21 | 1<<16 | 1625
	VCMPNEQ_OSSD Inst = 892<<21 | 2<<16 | 1626
	VCMPNEQ_OSSS Inst = 893<<21 | 2<<16 | 1628
	VCMPNEQ_UQPD Inst = 894<<21 | 1<<16 | 1630
	VCMPNEQ_UQPS Inst = 895<<21 | 1<<16 | 1631
	VCMPNEQ_UQSD Inst = 896<<21 | 2<<16 | 1632
	VCMPNEQ_UQSS Inst = 897<<21 | 2<<16 | 1634
	VCMPNEQ_USPD Inst = 898<<21 | 2<<16 | 1636
	VCMPNEQ_USPS Inst = 899<<21 | 1<<16 | 1638
	VCMPNEQ_USSD Inst = 900<<21 | 2<<16 | 1639
	VCMPNEQ_USSS Inst = 901<<21 | 2<<16 | 1641
	VCMPNEQPD Inst = 902<<21 | 2<<16 | 1643
	VCMPNEQPS Inst = 903<<21 | 1<<16 | 1645
	VCMPNEQSD Inst = 904<<21 | 2<<16 | 1646
	VCMPNEQSS Inst = 905<<21 | 2<<16 | 1648
	VCMPNGE_UQPD Inst = 906<<21 | 1<<16 | 1650
	VCMPNGE_UQPS Inst = 907<<21 | 1<<16 | 1651
	VCMPNGE_UQSD Inst = 908<<21 | 2<<16 | 1652
	VCMPNGE_UQSS Inst = 909<<21 | 2<<16 | 1654
	VCMPNGE_USPD Inst = 910<<21 | 1<<16 | 1656
	VCMPNGE_USPS Inst = 911<<21 | 1<<16 | 1657
	VCMPNGE_USSD Inst = 912<<21 | 2<<16 | 1658
	VCMPNGE_USSS Inst = 913<<21 | 2<<16 | 1660
	VCMPNGEPD Inst = 914<<21 | 2<<16 | 1662
	VCMPNGEPS Inst = 915<<21 | 1<<16 | 1664
	VCMPNGESD Inst = 916<<21 | 2<<16 | 1665
	VCMPNGESS Inst = 917<<21 | 2<<16 | 1667
	VCMPNGT_UQPD Inst = 918<<21 | 1<<16 | 1669
	VCMPNGT_UQPS Inst = 919<<21 | 1<<16 | 1670
	VCMPNGT_UQSD Inst = 920<<21 | 2<<16 | 1671
	VCMPNGT_UQSS Inst = 921<<21 | 2<<16 | 1673
	VCMPNGT_USPD Inst = 922<<21 | 1<<16 | 1675
	VCMPNGT_USPS Inst = 923<<21 | 1<<16 | 1676
	VCMPNGT_USSD Inst = 924<<21 | 2<<16 | 1677
	VCMPNGT_USSS Inst = 925<<21 | 2<<16 | 1679
	VCMPNGTPD Inst = 926<<21 | 1<<16 | 1681
	VCMPNGTPS Inst = 927<<21 | 1<<16 | 1682
	VCMPNGTSD Inst = 928<<21 | 2<<16 | 1683
	VCMPNGTSS Inst = 929<<21 | 2<<16 | 1685
	VCMPNLE_UQPD Inst = 930<<21 | 1<<16 | 1687
	VCMPNLE_UQPS Inst = 931<<21 | 1<<16 | 1688
	VCMPNLE_UQSD Inst = 932<<21 | 2<<16 | 1689
	VCMPNLE_UQSS Inst = 933<<21 | 2<<16 | 1691
	VCMPNLE_USPD Inst = 934<<21 | 2<<16 | 1693
	VCMPNLE_USPS Inst = 935<<21 | 1<<16 | 1695
	VCMPNLE_USSD Inst = 936<<21 | 2<<16 | 1696
	VCMPNLE_USSS Inst = 937<<21 | 2<<16 | 1698
	VCMPNLEPD Inst = 938<<21 | 1<<16 | 1700
	VCMPNLEPS Inst = 939<<21 | 1<<16 | 1701
	VCMPNLESD Inst = 940<<21 | 2<<16 | 1702
	VCMPNLESS Inst = 941<<21 | 2<<16 | 1704
	VCMPNLT_UQPD Inst = 942<<21 | 2<<16 | 1706
	VCMPNLT_UQPS Inst = 943<<21 | 1<<16 | 1708
	VCMPNLT_UQSD Inst = 944<<21 | 2<<16 | 1709
	VCMPNLT_UQSS Inst = 945<<21 | 2<<16 | 1711
	VCMPNLT_USPD Inst = 946<<21 | 1<<16 | 1713
	VCMPNLT_USPS Inst = 947<<21 | 1<<16 | 1714
	VCMPNLT_USSD Inst = 948<<21 | 2<<16 | 1715
	VCMPNLT_USSS Inst = 949<<21 | 2<<16 | 1717
	VCMPNLTPD Inst = 950<<21 | 2<<16 | 1719
	VCMPNLTPS Inst = 951<<21 | 1<<16 | 1721
	VCMPNLTSD Inst = 952<<21 | 2<<16 | 1722
	VCMPNLTSS Inst = 953<<21 | 2<<16 | 1724
	VCMPORD_QPD Inst = 954<<21 | 2<<16 | 1726
	VCMPORD_QPS Inst = 955<<21 | 1<<16 | 1728
	VCMPORD_QSD Inst = 956<<21 | 2<<16 | 1729
	VCMPORD_QSS Inst = 957<<21 | 2<<16 | 1731
	VCMPORD_SPD Inst = 958<<21 | 2<<16 | 1733
	VCMPORD_SPS Inst = 959<<21 | 1<<16 | 1735
	VCMPORD_SSD Inst = 960<<21 | 2<<16 | 1736
	VCMPORD_SSS Inst = 961<<21 | 2<<16 | 1738
	VCMPORDPD Inst = 962<<21 | 2<<16 | 1740
	VCMPORDPS Inst = 963<<21 | 1<<16 | 1742
	VCMPORDSD Inst = 964<<21 | 2<<16 | 1743
	VCMPORDSS Inst = 965<<21 | 2<<16 | 1745
	VCMPPD Inst = 966<<21 | 1<<16 | 1747
	VCMPPS Inst = 967<<21 | 1<<16 | 1748
	VCMPSD Inst = 968<<21 | 2<<16 | 1749
	VCMPSS Inst = 969<<21 | 2<<16 | 1751
	VCMPTRUE_UQPD Inst = 970<<21 | 2<<16 | 1753
	VCMPTRUE_UQPS Inst = 971<<21 | 1<<16 | 1755
	VCMPTRUE_UQSD Inst = 972<<21 | 2<<16 | 1756
	VCMPTRUE_UQSS Inst = 973<<21 | 2<<16 | 1758
	VCMPTRUE_USPD Inst = 974<<21 | 1<<16 | 1760
	VCMPTRUE_USPS Inst = 975<<21 | 1<<16 | 1761
	VCMPTRUE_USSD Inst = 976<<21 | 2<<16 | 1762
	VCMPTRUE_USSS Inst = 977<<21 | 2<<16 | 1764
	VCMPTRUEPD Inst = 978<<21 | 1<<16 | 1766
	VCMPTRUEPS Inst = 979<<21 | 1<<16 | 1767
	VCMPTRUESD Inst = 980<<21 | 2<<16 | 1768
	VCMPTRUESS Inst = 981<<21 | 2<<16 | 1770
	VCMPUNORD_QPD Inst = 982<<21 | 1<<16 | 1772
	VCMPUNORD_QPS Inst = 983<<21 | 1<<16 | 1773
	VCMPUNORD_QSD Inst = 984<<21 | 2<<16 | 1774
	VCMPUNORD_QSS Inst = 985<<21 | 2<<16 | 1776
	VCMPUNORD_SPD Inst = 986<<21 | 1<<16 | 1778
	VCMPUNORD_SPS Inst = 987<<21 | 1<<16 | 1779
	VCMPUNORD_SSD Inst = 988<<21 | 2<<16 | 1780
	VCMPUNORD_SSS Inst = 989<<21 | 2<<16 | 1782
	VCMPUNORDPD Inst = 990<<21 | 2<<16 | 1784
	VCMPUNORDPS Inst = 991<<21 | 1<<16 | 1786
	VCMPUNORDSD Inst = 992<<21 | 2<<16 | 1787
	VCMPUNORDSS Inst = 993<<21 | 2<<16 | 1789
	VCOMISD Inst = 994<<21 | 2<<16 | 1791
	VCOMISS Inst = 995<<21 | 2<<16 | 1793
	VCVTDQ2PD Inst = 996<<21 | 2<<16 | 1795
	VCVTDQ2PS Inst = 997<<21 | 1<<16 | 1797
	VCVTPD2DQ Inst = 998<<21 | 2<<16 | 1798
	VCVTPD2PS Inst = 999<<21 | 2<<16 | 1800
	VCVTPH2PS Inst = 1000<<21 | 2<<16 | 1802
	VCVTPS2DQ Inst = 1001<<21 | 1<<16 | 1804
	VCVTPS2PD Inst = 1002<<21 | 2<<16 | 1805
	VCVTPS2PH Inst = 1003<<21 | 2<<16 | 1807
	VCVTSD2SI Inst = 1004<<21 | 2<<16 | 1809
	VCVTSD2SS Inst = 1005<<21 | 2<<16 | 1811
	VCVTSI2SD Inst = 1006<<21 | 1<<16 | 1813
	VCVTSI2SS Inst = 1007<<21 | 1<<16 | 1814
	VCVTSS2SD Inst = 1008<<21 | 2<<16 | 1815
	VCVTSS2SI Inst = 1009<<21 | 2<<16 | 1817
	VCVTTPD2DQ Inst = 1010<<21 | 2<<16 | 1819
	VCVTTPS2DQ Inst = 1011<<21 | 1<<16 | 1821
	VCVTTSD2SI Inst = 1012<<21 | 2<<16 | 1822
	VCVTTSS2SI Inst = 1013<<21 | 2<<16 | 1824
	VDIVPD Inst = 1014<<21 | 1<<16 | 1826
	VDIVPS Inst = 1015<<21 | 1<<16 | 1827
	VDIVSD Inst = 1016<<21 | 2<<16 | 1828
	VDIVSS Inst = 1017<<21 | 2<<16 | 1830
	VDPPD Inst = 1018<<21 | 1<<16 | 1832
	VDPPS Inst = 1019<<21 | 1<<16 | 1833
	VERR Inst = 1020<<21 | 2<<16 | 1834
	VERW Inst = 1021<<21 | 2<<16 | 1836
	VEXTRACTF128 Inst = 1022<<21 | 1<<16 | 1838
	VEXTRACTI128 Inst = 1023<<21 | 1<<16 | 1839
	VEXTRACTPS Inst = 1024<<21 | 1<<16 | 1840
	VFMADD123PD Inst = 1025<<21 | 1<<16 | 1841
	VFMADD123PS Inst = 1026<<21 | 1<<16 | 1842
	VFMADD123SD Inst = 1027<<21 | 2<<16 | 1843
	VFMADD123SS Inst = 1028<<21 | 2<<16 | 1845
	VFMADD132PD Inst = 1029<<21 | 1<<16 | 1847
	VFMADD132PS Inst = 1030<<21 | 1<<16 | 1848
	VFMADD132SD Inst = 1031<<21 | 2<<16 | 1849
	VFMADD132SS Inst = 1032<<21 | 2<<16 | 1851
	VFMADD213PD Inst = 1033<<21 | 1<<16 | 1853
	VFMADD213PS Inst = 1034<<21 | 1<<16 | 1854
	VFMADD213SD Inst = 1035<<21 | 2<<16 | 1855
	VFMADD213SS Inst = 1036<<21 | 2<<16 | 1857
	VFMADD231PD Inst = 1037<<21 | 1<<16 | 1859
	VFMADD231PS Inst = 1038<<21 | 1<<16 | 1860
	VFMADD231SD Inst = 1039<<21 | 2<<16 | 1861
	VFMADD231SS Inst = 1040<<21 | 2<<16 | 1863
	VFMADD312PD Inst = 1041<<21 | 1<<16 | 1865
	VFMADD312PS Inst = 1042<<21 | 1<<16 | 1866
	VFMADD312SD Inst = 1043<<21 | 2<<16 | 1867
	VFMADD312SS Inst = 1044<<21 | 2<<16 | 1869
	VFMADD321PD Inst = 1045<<21 | 1<<16 | 1871
	VFMADD321PS Inst = 1046<<21 | 1<<16 | 1872
	VFMADD321SD Inst = 1047<<21 | 2<<16 | 1873
	VFMADD321SS Inst = 1048<<21 | 2<<16 | 1875
	VFMADDPD Inst = 1049<<21 | 2<<16 | 1877
	VFMADDPS Inst = 1050<<21 | 2<<16 | 1879
	VFMADDSD Inst = 1051<<21 | 3<<16 | 1881
	VFMADDSS Inst = 1052<<21 | 3<<16 | 1884
	VFMADDSUB123PD Inst = 1053<<21 | 1<<16 | 1887
	VFMADDSUB123PS Inst = 1054<<21 | 1<<16 | 1888
	VFMADDSUB132PD Inst = 1055<<21 | 1<<16 | 1889
	VFMADDSUB132PS Inst = 1056<<21 | 1<<16 | 1890
	VFMADDSUB213PD Inst = 1057<<21 | 1<<16 | 1891
	VFMADDSUB213PS Inst = 1058<<21 | 1<<16 | 1892
	VFMADDSUB231PD Inst = 1059<<21 | 1<<16 | 1893
	VFMADDSUB231PS Inst = 1060<<21 | 1<<16 | 1894
	VFMADDSUB312PD Inst = 1061<<21 | 1<<16 | 1895
	VFMADDSUB312PS Inst = 1062<<21 | 1<<16 | 1896
	VFMADDSUB321PD Inst = 1063<<21 | 1<<16 | 1897
	VFMADDSUB321PS Inst = 1064<<21 | 1<<16 | 1898
	VFMADDSUBPD Inst = 1065<<21 | 2<<16 | 1899
	VFMADDSUBPS Inst = 1066<<21 | 2<<16 | 1901
	VFMSUB123PD Inst = 1067<<21 | 1<<16 | 1903
	VFMSUB123PS Inst = 1068<<21 | 1<<16 | 1904
	VFMSUB123SD Inst = 1069<<21 | 2<<16 | 1905
	VFMSUB123SS Inst = 1070<<21 | 2<<16 | 1907
	VFMSUB132PD Inst = 1071<<21 | 1<<16 | 1909
	VFMSUB132PS Inst = 1072<<21 | 1<<16 | 1910
	VFMSUB132SD Inst = 1073<<21 | 2<<16 | 1911
	VFMSUB132SS Inst = 1074<<21 | 2<<16 | 1913
	VFMSUB213PD Inst = 1075<<21 | 1<<16 | 1915
	VFMSUB213PS Inst = 1076<<21 | 1<<16 | 1916
	VFMSUB213SD Inst = 1077<<21 | 2<<16 | 1917
	VFMSUB213SS Inst = 1078<<21 | 2<<16 | 1919
	VFMSUB231PD Inst = 1079<<21 | 1<<16 | 1921
	VFMSUB231PS Inst = 1080<<21 | 1<<16 | 1922
	VFMSUB231SD Inst = 1081<<21 | 2<<16 | 1923
	VFMSUB231SS Inst = 1082<<21 | 2<<16 | 1925
	VFMSUB312PD Inst = 1083<<21 | 1<<16 | 1927
	VFMSUB312PS Inst = 1084<<21 | 1<<16 | 1928
	VFMSUB312SD Inst = 1085<<21 | 2<<16 | 1929
	VFMSUB312SS Inst = 1086<<21 | 2<<16 | 1931
	VFMSUB321PD Inst = 1087<<21 | 1<<16 | 1933
	VFMSUB321PS Inst = 1088<<21 | 1<<16 | 1934
	VFMSUB321SD Inst = 1089<<21 | 2<<16 | 1935
	VFMSUB321SS Inst = 1090<<21 | 2<<16 | 1937
	VFMSUBADD123PD Inst = 1091<<21 | 1<<16 | 1939
	VFMSUBADD123PS Inst = 1092<<21 | 1<<16 | 1940
	VFMSUBADD132PD Inst = 1093<<21 | 1<<16 | 1941
	VFMSUBADD132PS Inst = 1094<<21 | 1<<16 | 1942
	VFMSUBADD213PD Inst = 1095<<21 | 1<<16 | 1943
	VFMSUBADD213PS Inst = 1096<<21 | 1<<16 | 1944
	VFMSUBADD231PD Inst = 1097<<21 | 1<<16 | 1945
	VFMSUBADD231PS Inst = 1098<<21 | 1<<16 | 1946
	VFMSUBADD312PD Inst = 1099<<21 | 1<<16 | 1947
	VFMSUBADD312PS Inst = 1100<<21 | 1<<16 | 1948
	VFMSUBADD321PD Inst = 1101<<21 | 1<<16 | 1949
	VFMSUBADD321PS Inst = 1102<<21 | 1<<16 | 1950
	VFMSUBADDPD Inst = 1103<<21 | 2<<16 | 1951
	VFMSUBADDPS Inst = 1104<<21 | 2<<16 | 1953
	VFMSUBPD Inst = 1105<<21 | 2<<16 | 1955
	VFMSUBPS Inst = 1106<<21 | 2<<16 | 1957
	VFMSUBSD Inst = 1107<<21 | 3<<16 | 1959
	VFMSUBSS Inst = 1108<<21 | 3<<16 | 1962
	VFNMADD123PD Inst = 1109<<21 | 1<<16 | 1965
	VFNMADD123PS Inst = 1110<<21 | 1<<16 | 1966
	VFNMADD123SD Inst = 1111<<21 | 2<<16 | 1967
	VFNMADD123SS Inst = 1112<<21 | 2<<16 | 1969
	VFNMADD132PD Inst = 1113<<21 | 1<<16 | 1971
	VFNMADD132PS Inst = 1114<<21 | 1<<16 | 1972
	VFNMADD132SD Inst = 1115<<21 | 2<<16 | 1973
	VFNMADD132SS Inst = 1116<<21 | 2<<16 | 1975
	VFNMADD213PD Inst = 1117<<21 | 1<<16 | 1977
	VFNMADD213PS Inst = 1118<<21 | 1<<16 | 1978
	VFNMADD213SD Inst = 1119<<21 | 2<<16 | 1979
	VFNMADD213SS Inst = 1120<<21 | 2<<16 | 1981
	VFNMADD231PD Inst = 1121<<21 | 1<<16 | 1983
	VFNMADD231PS Inst = 1122<<21 | 1<<16 | 1984
	VFNMADD231SD Inst = 1123<<21 | 2<<16 | 1985
	VFNMADD231SS Inst = 1124<<21 | 2<<16 | 1987
	VFNMADD312PD Inst = 1125<<21 | 1<<16 | 1989
	VFNMADD312PS Inst = 1126<<21 | 1<<16 | 1990
	VFNMADD312SD Inst = 1127<<21 | 2<<16 | 1991
	VFNMADD312SS Inst = 1128<<21 | 2<<16 | 1993
	VFNMADD321PD Inst = 1129<<21 | 1<<16 | 1995
	VFNMADD321PS Inst = 1130<<21 | 1<<16 | 1996
	VFNMADD321SD Inst = 1131<<21 | 2<<16 | 1997
	VFNMADD321SS Inst = 1132<<21 | 2<<16 | 1999
	VFNMADDPD Inst = 1133<<21 | 2<<16 | 2001
	VFNMADDPS Inst = 1134<<21 | 2<<16 | 2003
	VFNMADDSD Inst = 1135<<21 | 3<<16 | 2005
	VFNMADDSS Inst = 1136<<21 | 3<<16 | 2008
	VFNMSUB123PD Inst = 1137<<21 | 1<<16 | 2011
	VFNMSUB123PS Inst = 1138<<21 | 1<<16 | 2012
	VFNMSUB123SD Inst = 1139<<21 | 2<<16 | 2013
	VFNMSUB123SS Inst = 1140<<21 | 2<<16 | 2015
	VFNMSUB132PD Inst = 1141<<21 | 1<<16 | 2017
	VFNMSUB132PS Inst = 1142<<21 | 1<<16 | 2018
	VFNMSUB132SD Inst = 1143<<21 | 2<<16 | 2019
	VFNMSUB132SS Inst = 1144<<21 | 2<<16 | 2021
	VFNMSUB213PD Inst = 1145<<21 | 1<<16 | 2023
	VFNMSUB213PS Inst = 1146<<21 | 1<<16 | 2024
	VFNMSUB213SD Inst = 1147<<21 | 2<<16 | 2025
	VFNMSUB213SS Inst = 1148<<21 | 2<<16 | 2027
	VFNMSUB231PD Inst = 1149<<21 | 1<<16 | 2029
	VFNMSUB231PS Inst = 1150<<21 | 1<<16 | 2030
	VFNMSUB231SD Inst = 1151<<21 | 2<<16 | 2031
	VFNMSUB231SS Inst = 1152<<21 | 2<<16 | 2033
	VFNMSUB312PD Inst = 1153<<21 | 1<<16 | 2035
	VFNMSUB312PS Inst = 1154<<21 | 1<<16 | 2036
	VFNMSUB312SD Inst = 1155<<21 | 2<<16 | 2037
	VFNMSUB312SS Inst = 1156<<21 | 2<<16 | 2039
	VFNMSUB321PD Inst = 1157<<21 | 1<<16 | 2041
	VFNMSUB321PS Inst = 1158<<21 | 1<<16 | 2042
	VFNMSUB321SD Inst = 1159<<21 | 2<<16 | 2043
	VFNMSUB321SS Inst = 1160<<21 | 2<<16 | 2045
	VFNMSUBPD Inst = 1161<<21 | 2<<16 | 2047
	VFNMSUBPS Inst = 1162<<21 | 2<<16 | 2049
	VFNMSUBSD Inst = 1163<<21 | 3<<16 | 2051
	VFNMSUBSS Inst = 1164<<21 | 3<<16 | 2054
	VFRCZPD Inst = 1165<<21 | 1<<16 | 2057
	VFRCZPS Inst = 1166<<21 | 1<<16 | 2058
	VFRCZSD Inst = 1167<<21 | 2<<16 | 2059
	VFRCZSS Inst = 1168<<21 | 2<<16 | 2061
	VGATHERDPD Inst = 1169<<21 | 1<<16 | 2063
	VGATHERDPS Inst = 1170<<21 | 1<<16 | 2064
	VGATHERQPD Inst = 1171<<21 | 1<<16 | 2065
	VGATHERQPS Inst = 1172<<21 | 1<<16 | 2066
	VHADDPD Inst = 1173<<21 | 1<<16 | 2067
	VHADDPS Inst = 1174<<21 | 1<<16 | 2068
	VHSUBPD Inst = 1175<<21 | 1<<16 | 2069
	VHSUBPS Inst = 1176<<21 | 1<<16 | 2070
	VINSERTF128 Inst = 1177<<21 | 1<<16 | 2071
	VINSERTI128 Inst = 1178<<21 | 1<<16 | 2072
	VINSERTPS Inst = 1179<<21 | 2<<16 | 2073
	VLDDQU Inst = 1180<<21 | 1<<16 | 2075
	VLDMXCSR Inst = 1181<<21 | 1<<16 | 2076
	VLDQQU Inst = 1182<<21 | 1<<16 | 2077
	VMASKMOVDQU Inst = 1183<<21 | 1<<16 | 2078
	VMASKMOVPD Inst = 1184<<21 | 2<<16 | 2079
	VMASKMOVPS Inst = 1185<<21 | 2<<16 | 2081
	VMAXPD Inst = 1186<<21 | 1<<16 | 2083
	VMAXPS Inst = 1187<<21 | 1<<16 | 2084
	VMAXSD Inst = 1188<<21 | 2<<16 | 2085
	VMAXSS Inst = 1189<<21 | 2<<16 | 2087
	VMCALL Inst = 1190<<21 | 1<<16 | 2089
	VMCLEAR Inst = 1191<<21 | 1<<16 | 2090
	VMFUNC Inst = 1192<<21 | 1<<16 | 2091
	VMINPD Inst = 1193<<21 | 1<<16 | 2092
	VMINPS Inst = 1194<<21 | 1<<16 | 2093
	VMINSD Inst = 1195<<21 | 2<<16 | 2094
	VMINSS Inst = 1196<<21 | 2<<16 | 2096
	VMLAUNCH Inst = 1197<<21 | 1<<16 | 2098
	VMLOAD Inst = 1198<<21 | 1<<16 | 2099
	VMMCALL Inst = 1199<<21 | 1<<16 | 2100
	VMOVAPD Inst = 1200<<21 | 3<<16 | 2101
	VMOVAPS Inst = 1201<<21 | 3<<16 | 2104
	VMOVD Inst = 1202<<21 | 2<<16 | 2107
	VMOVDDUP Inst = 1203<<21 | 2<<16 | 2109
	VMOVDQA Inst = 1204<<21 | 3<<16 | 2111
	VMOVDQU Inst = 1205<<21 | 3<<16 | 2114
	VMOVHLPS Inst = 1206<<21 | 1<<16 | 2117
	VMOVHPD Inst = 1207<<21 | 2<<16 | 2118
	VMOVHPS Inst = 1208<<21 | 2<<16 | 2120
	VMOVLHPS Inst = 1209<<21 | 1<<16 | 2122
	VMOVLPD Inst = 1210<<21 | 2<<16 | 2123
	VMOVLPS Inst = 1211<<21 | 2<<16 | 2125
	VMOVMSKPD Inst = 1212<<21 | 1<<16 | 2127
	VMOVMSKPS Inst = 1213<<21 | 1<<16 | 2128
	VMOVNTDQ Inst = 1214<<21 | 1<<16 | 2129
	VMOVNTDQA Inst = 1215<<21 | 1<<16 | 2130
	VMOVNTPD Inst = 1216<<21 | 1<<16 | 2131
	VMOVNTPS Inst = 1217<<21 | 1<<16 | 2132
	VMOVNTQQ Inst = 1218<<21 | 1<<16 | 2133
	VMOVQ Inst = 1219<<21 | 6<<16 | 2134
	VMOVQQA Inst = 1220<<21 | 2<<16 | 2140
	VMOVQQU Inst = 1221<<21 | 2<<16 | 2142
	VMOVSD Inst = 1222<<21 | 4<<16 | 2144
	VMOVSHDUP Inst = 1223<<21 | 1<<16 | 2148
	VMOVSLDUP Inst = 1224<<21 | 1<<16 | 2149
	VMOVSS Inst = 1225<<21 | 4<<16 | 2150
	VMOVUPD Inst = 1226<<21 | 3<<16 | 2154
	VMOVUPS Inst = 1227<<21 | 3<<16 | 2157
	VMPSADBW Inst = 1228<<21 | 1<<16 | 2160
	VMPTRLD Inst = 1229<<21 | 1<<16 | 2161
	VMPTRST Inst = 1230<<21 | 1<<16 | 2162
	VMREAD Inst = 1231<<21 | 1<<16 | 2163
	VMRESUME Inst = 1232<<21 | 1<<16 | 2164
	VMRUN Inst = 1233<<21 | 1<<16 | 2165
	VMSAVE Inst = 1234<<21 | 1<<16 | 2166
	VMULPD Inst = 1235<<21 | 1<<16 | 2167
	VMULPS Inst = 1236<<21 | 1<<16 | 2168
	VMULSD Inst = 1237<<21 | 2<<16 | 2169
	VMULSS Inst = 1238<<21 | 2<<16 | 2171
	VMWRITE Inst = 1239<<21 | 1<<16 | 2173
	VMXOFF Inst = 1240<<21 | 1<<16 | 2174
	VMXON Inst = 1241<<21 | 1<<16 | 2175
	VORPD Inst = 1242<<21 | 1<<16 | 2176
	VORPS Inst = 1243<<21 | 1<<16 | 2177
	VPABSB Inst = 1244<<21 | 1<<16 | 2178
	VPABSD Inst = 1245<<21 | 1<<16 | 2179
	VPABSW Inst = 1246<<21 | 1<<16 | 2180
	VPACKSSDW Inst = 1247<<21 | 1<<16 | 2181
	VPACKSSWB Inst = 1248<<21 | 1<<16 | 2182
	VPACKUSDW Inst = 1249<<21 | 1<<16 | 2183
	VPACKUSWB Inst = 1250<<21 | 1<<16 | 2184
	VPADDB Inst = 1251<<21 | 1<<16 | 2185
	VPADDD Inst = 1252<<21 | 1<<16 | 2186
	VPADDQ Inst = 1253<<21 | 1<<16 | 2187
	VPADDSB Inst = 1254<<21 | 1<<16 | 2188
	VPADDSW Inst = 1255<<21 | 1<<16 | 2189
	VPADDUSB Inst = 1256<<21 | 1<<16 | 2190
	VPADDUSW Inst = 1257<<21 | 1<<16 | 2191
	VPADDW Inst = 1258<<21 | 1<<16 | 2192
	VPALIGNR Inst = 1259<<21 | 1<<16 | 2193
	VPAND Inst = 1260<<21 | 1<<16 | 2194
	VPANDN Inst = 1261<<21 | 1<<16 | 2195
	VPAVGB Inst = 1262<<21 | 1<<16 | 2196
	VPAVGW Inst = 1263<<21 | 1<<16 | 2197
	VPBLENDD Inst = 1264<<21 | 1<<16 | 2198
	VPBLENDVB Inst = 1265<<21 | 1<<16 | 2199
	VPBLENDW Inst = 1266<<21 | 1<<16 | 2200
	VPBROADCASTB Inst = 1267<<21 | 2<<16 | 2201
	VPBROADCASTD Inst = 1268<<21 | 2<<16 | 2203
	VPBROADCASTQ Inst = 1269<<21 | 3<<16 | 2205
	VPBROADCASTW Inst = 1270<<21 | 2<<16 | 2208
	VPCLMULHQHQDQ Inst = 1271<<21 | 1<<16 | 2210
	VPCLMULHQLQDQ Inst = 1272<<21 | 1<<16 | 2211
	VPCLMULLQHQDQ Inst = 1273<<21 | 1<<16 | 2212
	VPCLMULLQLQDQ Inst = 1274<<21 | 1<<16 | 2213
	VPCLMULQDQ Inst = 1275<<21 | 1<<16 | 2214
	VPCMOV Inst = 1276<<21 | 2<<16 | 2215
	VPCMPEQB Inst = 1277<<21 | 1<<16 | 2217
	VPCMPEQD Inst = 1278<<21 | 1<<16 | 2218
	VPCMPEQQ Inst = 1279<<21 | 1<<16 | 2219
	VPCMPEQW Inst = 1280<<21 | 1<<16 | 2220
	VPCMPESTRI Inst = 1281<<21 | 1<<16 | 2221
	VPCMPESTRM Inst = 1282<<21 | 1<<16 | 2222
	VPCMPGTB Inst = 1283<<21 | 1<<16 | 2223
	VPCMPGTD Inst = 1284<<21 | 1<<16 | 2224
	VPCMPGTQ Inst = 1285<<21 | 1<<16 | 2225
	VPCMPGTW Inst = 1286<<21 | 1<<16 | 2226
	VPCMPISTRI Inst = 1287<<21 | 1<<16 | 2227
	VPCMPISTRM Inst = 1288<<21 | 1<<16 | 2228
	VPCOMB Inst = 1289<<21 | 1<<16 | 2229
	VPCOMD Inst = 1290<<21 | 1<<16 | 2230
	VPCOMQ Inst = 1291<<21 | 1<<16 | 2231
	VPCOMUB Inst = 1292<<21 | 1<<16 | 2232
	VPCOMUD Inst = 1293<<21 | 1<<16 | 2233
	VPCOMUQ Inst = 1294<<21 | 1<<16 | 2234
	VPCOMUW Inst = 1295<<21 | 1<<16 | 2235
	VPCOMW Inst = 1296<<21 | 1<<16 | 2236
	VPERM2F128 Inst = 1297<<21 | 1<<16 | 2237
	VPERM2I128 Inst = 1298<<21 | 1<<16 | 2238
	VPERMD Inst = 1299<<21 | 1<<16 | 2239
	VPERMILPD Inst = 1300<<21 | 2<<16 | 2240
	VPERMILPS Inst = 1301<<21 | 2<<16 | 2242
	VPERMPD Inst = 1302<<21 | 1<<16 | 2244
	VPERMPS Inst = 1303<<21 | 1<<16 | 2245
	VPERMQ Inst = 1304<<21 | 1<<16 | 2246
	VPEXTRB Inst = 1305<<21 | 3<<16 | 2247
	VPEXTRD Inst = 1306<<21 | 2<<16 | 2250
	VPEXTRQ Inst = 1307<<21 | 1<<16 | 2252
	VPEXTRW Inst = 1308<<21 | 5<<16 | 2253
	VPGATHERDD Inst = 1309<<21 | 1<<16 | 2258
	VPGATHERDQ Inst = 1310<<21 | 1<<16 | 2259
	VPGATHERQD Inst = 1311<<21 | 1<<16 | 2260
	VPGATHERQQ Inst = 1312<<21 | 1<<16 | 2261
	VPHADDBD Inst = 1313<<21 | 1<<16 | 2262
	VPHADDBQ Inst = 1314<<21 | 1<<16 | 2263
	VPHADDBW Inst = 1315<<21 | 1<<16 | 2264
	VPHADDD Inst = 1316<<21 | 1<<16 | 2265
	VPHADDDQ Inst = 1317<<21 | 1<<16 | 2266
	VPHADDSW Inst = 1318<<21 | 1<<16 | 2267
	VPHADDUBD Inst = 1319<<21 | 1<<16 | 2268
	VPHADDUBQ Inst = 1320<<21 | 1<<16 | 2269
	VPHADDUBW Inst = 1321<<21 | 1<<16 | 2270
	VPHADDUDQ Inst = 1322<<21 | 1<<16 | 2271
	VPHADDUWD Inst = 1323<<21 | 1<<16 | 2272
	VPHADDUWQ Inst = 1324<<21 | 1<<16 | 2273
	VPHADDW Inst = 1325<<21 | 1<<16 | 2274
	VPHADDWD Inst = 1326<<21 | 1<<16 | 2275
	VPHADDWQ Inst = 1327<<21 | 1<<16 | 2276
	VPHMINPOSUW Inst = 1328<<21 | 1<<16 | 2277
	VPHSUBBW Inst = 1329<<21 | 1<<16 | 2278
	VPHSUBD Inst = 1330<<21 | 1<<16 | 2279
	VPHSUBDQ Inst = 1331<<21 | 1<<16 | 2280
	VPHSUBSW Inst = 1332<<21 | 1<<16 | 2281
	VPHSUBW Inst = 1333<<21 | 1<<16 | 2282
	VPHSUBWD Inst = 1334<<21 | 1<<16 | 2283
	VPINSRB Inst = 1335<<21 | 2<<16 | 2284
	VPINSRD Inst = 1336<<21 | 1<<16 | 2286
	VPINSRQ Inst = 1337<<21 | 1<<16 | 2287
	VPINSRW Inst = 1338<<21 | 2<<16 | 2288
	VPMACSDD Inst = 1339<<21 | 1<<16 | 2290
	VPMACSDQH Inst = 1340<<21 | 1<<16 | 2291
	VPMACSDQL Inst = 1341<<21 | 1<<16 | 2292
	VPMACSSDD Inst = 1342<<21 | 1<<16 | 2293
	VPMACSSDQH Inst = 1343<<21 | 1<<16 | 2294
	VPMACSSDQL Inst = 1344<<21 | 1<<16 | 2295
	VPMACSSWD Inst = 1345<<21 | 1<<16 | 2296
	VPMACSSWW Inst = 1346<<21 | 1<<16 | 2297
	VPMACSWD Inst = 1347<<21 | 1<<16 | 2298
	VPMACSWW Inst = 1348<<21 | 1<<16 | 2299
	VPMADCSSWD Inst = 1349<<21 | 1<<16 | 2300
	VPMADCSWD Inst = 1350<<21 | 1<<16 | 2301
	VPMADDUBSW Inst = 1351<<21 | 1<<16 | 2302
	VPMADDWD Inst = 1352<<21 | 1<<16 | 2303
	VPMASKMOVD Inst = 1353<<21 | 2<<16 | 2304
	VPMASKMOVQ Inst = 1354<<21 | 2<<16 | 2306
	VPMAXSB Inst = 1355<<21 | 1<<16 | 2308
	VPMAXSD Inst = 1356<<21 | 1<<16 | 2309
	VPMAXSW Inst = 1357<<21 | 1<<16 | 2310
	VPMAXUB Inst = 1358<<21 | 1<<16 | 2311
	VPMAXUD Inst = 1359<<21 | 1<<16 | 2312
	VPMAXUW Inst = 1360<<21 | 1<<16 | 2313
	VPMINSB Inst = 1361<<21 | 1<<16 | 2314
	VPMINSD Inst = 1362<<21 | 1<<16 | 2315
	VPMINSW Inst = 1363<<21 | 1<<16 | 2316
	VPMINUB Inst = 1364<<21 | 1<<16 | 2317
	VPMINUD Inst = 1365<<21 | 1<<16 | 2318
	VPMINUW Inst = 1366<<21 | 1<<16 | 2319
	VPMOVMSKB Inst = 1367<<21 | 1<<16 | 2320
	VPMOVSXBD Inst = 1368<<21 | 2<<16 | 2321
	VPMOVSXBQ Inst = 1369<<21 | 2<<16 | 2323
	VPMOVSXBW Inst = 1370<<21 | 2<<16 | 2325
	VPMOVSXDQ Inst = 1371<<21 | 2<<16 | 2327
	VPMOVSXWD Inst = 1372<<21 | 2<<16 | 2329
	VPMOVSXWQ Inst = 1373<<21 | 2<<16 | 2331
	VPMOVZXBD Inst = 1374<<21 | 2<<16 | 2333
	VPMOVZXBQ Inst = 1375<<21 | 2<<16 | 2335
	VPMOVZXBW Inst = 1376<<21 | 2<<16 | 2337
	VPMOVZXDQ Inst = 1377<<21 | 2<<16 | 2339
	VPMOVZXWD Inst = 1378<<21 | 2<<16 | 2341
	VPMOVZXWQ Inst = 1379<<21 | 2<<16 | 2343
	VPMULDQ Inst = 1380<<21 | 1<<16 | 2345
	VPMULHRSW Inst = 1381<<21 | 1<<16 | 2346
	VPMULHUW Inst = 1382<<21 | 1<<16 | 2347
	VPMULHW Inst = 1383<<21 | 1<<16 | 2348
	VPMULLD Inst = 1384<<21 | 1<<16 | 2349
	VPMULLW Inst = 1385<<21 | 1<<16 | 2350
	VPMULUDQ Inst = 1386<<21 | 1<<16 | 2351
	VPOR Inst = 1387<<21 | 1<<16 | 2352
	VPPERM Inst = 1388<<21 | 2<<16 | 2353
	VPROTB Inst = 1389<<21 | 3<<16 | 2355
	VPROTD Inst = 1390<<21 | 3<<16 | 2358
	VPROTQ Inst = 1391<<21 | 3<<16 | 2361
	VPROTW Inst = 1392<<21 | 3<<16 | 2364
	VPSADBW Inst = 1393<<21 | 1<<16 | 2367
	VPSHAB Inst = 1394<<21 | 2<<16 | 2368
	VPSHAD Inst = 1395<<21 | 2<<16 | 2370
	VPSHAQ Inst = 1396<<21 | 2<<16 | 2372
	VPSHAW Inst = 1397<<21 | 2<<16 | 2374
	VPSHLB Inst = 1398<<21 | 2<<16 | 2376
	VPSHLD Inst = 1399<<21 | 2<<16 | 2378
	VPSHLQ Inst = 1400<<21 | 2<<16 | 2380
	VPSHLW Inst = 1401<<21 | 2<<16 | 2382
	VPSHUFB Inst = 1402<<21 | 1<<16 | 2384
	VPSHUFD Inst = 1403<<21 | 1<<16 | 2385
	VPSHUFHW Inst = 1404<<21 | 1<<16 | 2386
	VPSHUFLW Inst = 1405<<21 | 1<<16 | 2387
	VPSIGNB Inst = 1406<<21 | 1<<16 | 2388
	VPSIGND Inst = 1407<<21 | 1<<16 | 2389
	VPSIGNW Inst = 1408<<21 | 1<<16 | 2390
	VPSLLD Inst = 1409<<21 | 2<<16 | 2391
	VPSLLDQ Inst = 1410<<21 | 1<<16 | 2393
	VPSLLQ Inst = 1411<<21 | 2<<16 | 2394
	VPSLLVD Inst = 1412<<21 | 1<<16 | 2396
	VPSLLVQ Inst = 1413<<21 | 1<<16 | 2397
	VPSLLW Inst = 1414<<21 | 2<<16 | 2398
	VPSRAD Inst = 1415<<21 | 2<<16 | 2400
	VPSRAVD Inst = 1416<<21 | 1<<16 | 2402
	VPSRAW Inst = 1417<<21 | 2<<16 | 2403
	VPSRLD Inst = 1418<<21 | 2<<16 | 2405
	VPSRLDQ Inst = 1419<<21 | 1<<16 | 2407
	VPSRLQ Inst = 1420<<21 | 2<<16 | 2408
	VPSRLVD Inst = 1421<<21 | 1<<16 | 2410
	VPSRLVQ Inst = 1422<<21 | 1<<16 | 2411
	VPSRLW Inst = 1423<<21 | 2<<16 | 2412
	VPSUBB Inst = 1424<<21 | 1<<16 | 2414
	VPSUBD Inst = 1425<<21 | 1<<16 | 2415
	VPSUBQ Inst = 1426<<21 | 1<<16 | 2416
	VPSUBSB Inst = 1427<<21 | 1<<16 | 2417
	VPSUBSW Inst = 1428<<21 | 1<<16 | 2418
	VPSUBUSB Inst = 1429<<21 | 1<<16 | 2419
	VPSUBUSW Inst = 1430<<21 | 1<<16 | 2420
	VPSUBW Inst = 1431<<21 | 1<<16 | 2421
	VPTEST Inst = 1432<<21 | 1<<16 | 2422
	VPUNPCKHBW Inst = 1433<<21 | 1<<16 | 2423
	VPUNPCKHDQ Inst = 1434<<21 | 1<<16 | 2424
	VPUNPCKHQDQ Inst = 1435<<21 | 1<<16 | 2425
	VPUNPCKHWD Inst = 1436<<21 | 1<<16 | 2426
	VPUNPCKLBW Inst = 1437<<21 | 1<<16 | 2427
	VPUNPCKLDQ Inst = 1438<<21 | 1<<16 | 2428
	VPUNPCKLQDQ Inst = 1439<<21 | 1<<16 | 2429
	VPUNPCKLWD Inst = 1440<<21 | 1<<16 | 2430
	VPXOR Inst = 1441<<21 | 1<<16 | 2431
	VRCPPS Inst = 1442<<21 | 1<<16 | 2432
	VRCPSS Inst = 1443<<21 | 2<<16 | 2433
	VROUNDPD Inst = 1444<<21 | 1<<16 | 2435
	VROUNDPS Inst = 1445<<21 | 1<<16 | 2436
	VROUNDSD Inst = 1446<<21 | 2<<16 | 2437
	VROUNDSS Inst = 1447<<21 | 2<<16 | 2439
	VRSQRTPS Inst = 1448<<21 | 1<<16 | 2441
	VRSQRTSS Inst = 1449<<21 | 2<<16 | 2442
	VSHUFPD Inst = 1450<<21 | 1<<16 | 2444
	VSHUFPS Inst = 1451<<21 | 1<<16 | 2445
	VSQRTPD Inst = 1452<<21 | 1<<16 | 2446
	VSQRTPS Inst = 1453<<21 | 1<<16 | 2447
	VSQRTSD Inst = 1454<<21 | 2<<16 | 2448
	VSQRTSS Inst = 1455<<21 | 2<<16 | 2450
	VSTMXCSR Inst = 1456<<21 | 1<<16 | 2452
	VSUBPD Inst = 1457<<21 | 1<<16 | 2453
	VSUBPS Inst = 1458<<21 | 1<<16 | 2454
	VSUBSD Inst = 1459<<21 | 2<<16 | 2455
	VSUBSS Inst = 1460<<21 | 2<<16 | 2457
	VTESTPD Inst = 1461<<21 | 1<<16 | 2459
	VTESTPS Inst = 1462<<21 | 1<<16 | 2460
	VUCOMISD Inst = 1463<<21 | 2<<16 | 2461
	VUCOMISS Inst = 1464<<21 | 2<<16 | 2463
	VUNPCKHPD Inst = 1465<<21 | 1<<16 | 2465
	VUNPCKHPS Inst = 1466<<21 | 1<<16 | 2466
	VUNPCKLPD Inst = 1467<<21 | 1<<16 | 2467
	VUNPCKLPS Inst = 1468<<21 | 1<<16 | 2468
	VXORPD Inst = 1469<<21 | 1<<16 | 2469
	VXORPS Inst = 1470<<21 | 1<<16 | 2470
	VZEROALL Inst = 1471<<21 | 1<<16 | 2471
	VZEROUPPER Inst = 1472<<21 | 1<<16 | 2472
	WBINVD Inst = 1473<<21 | 1<<16 | 2473
	WRFSBASE Inst = 1474<<21 | 2<<16 | 2474
	WRGSBASE Inst = 1475<<21 | 2<<16 | 2476
	WRMSR Inst = 1476<<21 | 1<<16 | 2478
	WRPKRU Inst = 1477<<21 | 1<<16 | 2479
	WRSHR Inst = 1478<<21 | 1<<16 | 2480
	XABORT Inst = 1479<<21 | 1<<16 | 2481
	XADD Inst = 1480<<21 | 4<<16 | 2482
	XBEGIN Inst = 1481<<21 | 1<<16 | 2486
	XCHG Inst = 1482<<21 | 10<<16 | 2487
	XCRYPTCBC Inst = 1483<<21 | 1<<16 | 2497
	XCRYPTCFB Inst = 1484<<21 | 1<<16 | 2498
	XCRYPTCTR Inst = 1485<<21 | 1<<16 | 2499
	XCRYPTECB Inst = 1486<<21 | 1<<16 | 2500
	XCRYPTOFB Inst = 1487<<21 | 1<<16 | 2501
	XEND Inst = 1488<<21 | 1<<16 | 2502
	XGETBV Inst = 1489<<21 | 1<<16 | 2503
	XLAT Inst = 1490<<21 | 1<<16 | 2504
	XLATB Inst = 1491<<21 | 1<<16 | 2505
	XOR Inst = 1492<<21 | 14<<16 | 2506
	XORPD Inst = 1493<<21 | 1<<16 | 2520
	XORPS Inst = 1494<<21 | 1<<16 | 2521
	XRSTOR Inst = 1495<<21 | 1<<16 | 2522
	XRSTOR64 Inst = 1496<<21 | 1<<16 | 2523
	XRSTORS64 Inst = 1497<<21 | 1<<16 | 2524
	XSAVE Inst = 1498<<21 | 1<<16 | 2525
	XSAVE64 Inst = 1499<<21 | 1<<16 | 2526
	XSAVEC64 Inst = 1500<<21 | 1<<16 | 2527
	XSAVEOPT64 Inst = 1501<<21 | 1<<16 | 2528
	XSAVES64 Inst = 1502<<21 | 1<<16 | 2529
	XSETBV Inst = 1503<<21 | 1<<16 | 2530
	XSHA1 Inst = 1504<<21 | 1<<16 | 2531
	XSHA256 Inst = 1505<<21 | 1<<16 | 2532
	XSTORE Inst = 1506<<21 | 1<<16 | 2533
	XTEST Inst = 1507<<21 | 1<<16 | 2534
)

const instNames = "AAAAADAAMAASADCADCXADDADDPDADDPSADDSDADDSSADDSUBPDADDSUBPSADOXAESDECAESDECLASTAESENCAESENCLASTAESIMCAESKEYGENASSISTANDANDNANDNPDANDNPSANDPDANDPSARPLBEXTRBLCFILLBLCIBLCICBLCMSKBLCSBLENDPDBLENDPSBLENDVPDBLENDVPSBLSFILLBLSIBLSICBLSMSKBLSRBNDCLBNDCNBNDCUBNDLDXBNDMKBNDMOVBNDSTXBOUNDBSFBSRBSWAPBTBTCBTRBTSBZHICALLCALLFCBWCDQCDQECLACCLCCLDCLFLUSHCLGICLICLTSCLZEROCMCCMOVACMOVAECMOVBCMOVBECMOVCCMOVECMOVGCMOVGECMOVLCMOVLECMOVNACMOVNAECMOVNBCMOVNBECMOVNCCMOVNECMOVNGCMOVNGECMOVNLCMOVNLECMOVNOCMOVNPCMOVNSCMOVNZCMOVOCMOVPCMOVPECMOVPOCMOVSCMOVZCMPCMPEQPDCMPEQPSCMPEQSDCMPEQSSCMPLEPDCMPLEPSCMPLESDCMPLESSCMPLTPDCMPLTPSCMPLTSDCMPLTSSCMPNEQPDCMPNEQPSCMPNEQSDCMPNEQSSCMPNLEPDCMPNLEPSCMPNLESDCMPNLESSCMPNLTPDCMPNLTPSCMPNLTSDCMPNLTSSCMPORDPDCMPORDPSCMPORDSDCMPORDSSCMPPDCMPPSCMPSBCMPSDCMPSQCMPSSCMPSWCMPUNORDPDCMPUNORDPSCMPUNORDSDCMPUNORDSSCMPXCHGCMPXCHG16BCMPXCHG8BCOMISDCOMISSCPU_READCPU_WRITECPUIDCQOCRC32CVTDQ2PDCVTDQ2PSCVTPD2DQCVTPD2PICVTPD2PSCVTPI2PDCVTPI2PSCVTPS2DQCVTPS2PDCVTPS2PICVTSD2SICVTSD2SSCVTSI2SDCVTSI2SSCVTSS2SDCVTSS2SICVTTPD2DQCVTTPD2PICVTTPS2DQCVTTPS2PICVTTSD2SICVTTSS2SICWDCWDEDAADASDECDIVDIVPDDIVPSDIVSDDIVSSDMINTDPPDDPPSEMMSENTEREXTRACTPSEXTRQF2XM1FABSFADDFADDPFBLDFBSTPFCHSFCLEXFCMOVBFCMOVBEFCMOVEFCMOVNBFCMOVNBEFCMOVNEFCMOVNUFCMOVUFCOMFCOMIFCOMIPFCOMPFCOMPPFCOSFDECSTPFDISIFDIVFDIVPFDIVRFDIVRPFEMMSFENIFFREEFIADDFICOMFICOMPFIDIVFIDIVRFILDFIMULFINCSTPFINITFISTFISTPFISTTPFISUBFISUBRFLDFLD1FLDCWFLDENVFLDL2EFLDL2TFLDLG2FLDLN2FLDPIFLDZFMULFMULPFNCLEXFNDISIFNENIFNINITFNOPFNSAVEFNSTCWFNSTENVFNSTSWFPATANFPREMFPREM1FPTANFRNDINTFRSTORFSAVEFSCALEFSETPMFSINFSINCOSFSQRTFSTFSTCWFSTENVFSTPFSTSWFSUBFSUBPFSUBRFSUBRPFTSTFUCOMFUCOMIFUCOMIPFUCOMPFUCOMPPFWAITFXAMFXCHFXRSTORFXRSTOR64FXSAVEFXSAVE64FXTRACTFYL2XFYL2XP1GETSECHADDPDHADDPSHLTHSUBPDHSUBPSICEBPIDIVIMULININCINSBINSDINSERTPSINSERTQINSWINTINT01INT03INT1INT3INTOINVDINVEPTINVLPGINVLPGAINVPCIDINVVPIDIRETIRETDIRETQIRETWJAJAEJBJBEJCJEJECXZJGJGEJLJLEJMPJMPFJNAJNAEJNBJNBEJNCJNEJNGJNGEJNLJNLEJNOJNPJNSJNZJOJPJPEJPOJRCXZJSJZLAHFLARLDDQULDMXCSRLDSLEALEAVELESLFENCELFSLGDTLGSLIDTLLDTLLWPCBLMSWLODSBLODSDLODSQLODSWLOOPLOOPELOOPNELOOPNZLOOPZLSLLSSLTRLWPINSLWPVALLZCNTMASKMOVDQUMASKMOVQMAXPDMAXPSMAXSDMAXSSMFENCEMINPDMINPSMINSDMINSSMONITORMONITORXMONTMULMOVMOVABSMOVAPDMOVAPSMOVBEMOVDMOVDDUPMOVDQ2QMOVDQAMOVDQUMOVHLPSMOVHPDMOVHPSMOVLHPSMOVLPDMOVLPSMOVMSKPDMOVMSKPSMOVNTDQMOVNTDQAMOVNTIMOVNTPDMOVNTPSMOVNTQMOVNTSDMOVNTSSMOVQMOVQ2DQMOVSBMOVSDMOVSHDUPMOVSLDUPMOVSQMOVSSMOVSWMOVSXMOVSXDMOVUPDMOVUPSMOVZXMPSADBWMULMULPDMULPSMULSDMULSSMULXMWAITMWAITXNEGNOPNOTORORPDORPSOUTOUTSBOUTSDOUTSWPABSBPABSDPABSWPACKSSDWPACKSSWBPACKUSDWPACKUSWBPADDBPADDDPADDQPADDSBPADDSIWPADDSWPADDUSBPADDUSWPADDWPALIGNRPANDPANDNPAUSEPAVEBPAVGBPAVGUSBPAVGWPBLENDVBPBLENDWPCLMULHQHQDQPCLMULHQLQDQPCLMULLQHQDQPCLMULLQLQDQPCLMULQDQPCMPEQBPCMPEQDPCMPEQQPCMPEQWPCMPESTRIPCMPESTRMPCMPGTBPCMPGTDPCMPGTQPCMPGTWPCMPISTRIPCMPISTRMPDEPPDISTIBPEXTPEXTRBPEXTRDPEXTRQPEXTRWPF2IDPF2IWPFACCPFADDPFCMPEQPFCMPGEPFCMPGTPFMAXPFMINPFMULPFNACCPFPNACCPFRCPPFRCPIT1PFRCPIT2PFRCPVPFRSQIT1PFRSQRTPFRSQRTVPFSUBPFSUBRPHADDDPHADDSWPHADDWPHMINPOSUWPHSUBDPHSUBSWPHSUBWPI2FDPI2FWPINSRBPINSRDPINSRQPINSRWPMACHRIWPMADDUBSWPMADDWDPMAGWPMAXSBPMAXSDPMAXSWPMAXUBPMAXUDPMAXUWPMINSBPMINSDPMINSWPMINUBPMINUDPMINUWPMOVMSKBPMOVSXBDPMOVSXBQPMOVSXBWPMOVSXDQPMOVSXWDPMOVSXWQPMOVZXBDPMOVZXBQPMOVZXBWPMOVZXDQPMOVZXWDPMOVZXWQPMULDQPMULHRIWPMULHRSWPMULHRWAPMULHRWCPMULHUWPMULHWPMULLDPMULLWPMULUDQPMVGEZBPMVLZBPMVNZBPMVZBPOPPOPAPOPADPOPCNTPOPFPOPFQPOPFWPORPREFETCHPREFETCHNTAPREFETCHT0PREFETCHT1PREFETCHT2PREFETCHWPREFETCHWT1PSADBWPSHUFBPSHUFDPSHUFHWPSHUFLWPSHUFWPSIGNBPSIGNDPSIGNWPSLLDPSLLDQPSLLQPSLLWPSRADPSRAWPSRLDPSRLDQPSRLQPSRLWPSUBBPSUBDPSUBQPSUBSBPSUBSIWPSUBSWPSUBUSBPSUBUSWPSUBWPSWAPDPTESTPUNPCKHBWPUNPCKHDQPUNPCKHQDQPUNPCKHWDPUNPCKLBWPUNPCKLDQPUNPCKLQDQPUNPCKLWDPUSHPUSHAPUSHADPUSHFPUSHFQPUSHFWPXORRCLRCPPSRCPSSRCRRDFSBASERDGSBASERDMRDMSRRDPIDRDPKRURDPMCRDRANDRDSEEDRDSHRRDTSCRDTSCPRETRETFRETNROLRORRORXROUNDPDROUNDPSROUNDSDROUNDSSRSDCRSLDTRSMRSQRTPSRSQRTSSRSTSSAHFSALSARSARXSBBSCASBSCASDSCASQSCASWSETASETAESETBSETBESETCSETESETGSETGESETLSETLESETNASETNAESETNBSETNBESETNCSETNESETNGSETNGESETNLSETNLESETNOSETNPSETNSSETNZSETOSETPSETPESETPOSETSSETZSFENCESGDTSHA1MSG1SHA1MSG2SHA1NEXTESHA1RNDS4SHA256MSG1SHA256MSG2SHA256RNDS2SHLSHLDSHLXSHRSHRDSHRXSHUFPDSHUFPSSIDTSKINITSLDTSLWPCBSMINTSMSWSQRTPDSQRTPSSQRTSDSQRTSSSTACSTCSTDSTGISTISTMXCSRSTOSBSTOSDSTOSQSTOSWSTRSUBSUBPDSUBPSSUBSDSUBSSSVDCSVLDTSVTSSWAPGSSYSCALLSYSENTERSYSEXITSYSRETT1MSKCTESTTZCNTTZMSKUCOMISDUCOMISSUD2UD2AUNPCKHPDUNPCKHPSUNPCKLPDUNPCKLPSVADDPDVADDPSVADDSDVADDSSVADDSUBPDVADDSUBPSVAESDECVAESDECLASTVAESENCVAESENCLASTVAESIMCVAESKEYGENASSISTVANDNPDVANDNPSVANDPDVANDPSVBLENDPDVBLENDPSVBLENDVPDVBLENDVPSVBROADCASTF128VBROADCASTI128VBROADCASTSDVBROADCASTSSVCMPEQ_OSPDVCMPEQ_OSPSVCMPEQ_OSSDVCMPEQ_OSSSVCMPEQ_UQPDVCMPEQ_UQPSVCMPEQ_UQSDVCMPEQ_UQSSVCMPEQ_USPDVCMPEQ_USPSVCMPEQ_USSDVCMPEQ_USSSVCMPEQPDVCMPEQPSVCMPEQSDVCMPEQSSVCMPFALSE_OQPDVCMPFALSE_OQPSVCMPFALSE_OQSDVCMPFALSE_OQSSVCMPFALSE_OSPDVCMPFALSE_OSPSVCMPFALSE_OSSDVCMPFALSE_OSSSVCMPFALSEPDVCMPFALSEPSVCMPFALSESDVCMPFALSESSVCMPGE_OQPDVCMPGE_OQPSVCMPGE_OQSDVCMPGE_OQSSVCMPGE_OSPDVCMPGE_OSPSVCMPGE_OSSDVCMPGE_OSSSVCMPGEPDVCMPGEPSVCMPGESDVCMPGESSVCMPGT_OQPDVCMPGT_OQPSVCMPGT_OQSDVCMPGT_OQSSVCMPGT_OSPDVCMPGT_OSPSVCMPGT_OSSDVCMPGT_OSSSVCMPGTPDVCMPGTPSVCMPGTSDVCMPGTSSVCMPLE_OQPDVCMPLE_OQPSVCMPLE_OQSDVCMPLE_OQSSVCMPLE_OSPDVCMPLE_OSPSVCMPLE_OSSDVCMPLE_OSSSVCMPLEPDVCMPLEPSVCMPLESDVCMPLESSVCMPLT_OQPDVCMPLT_OQPSVCMPLT_OQSDVCMPLT_OQSSVCMPLT_OSPDVCMPLT_OSPSVCMPLT_OSSDVCMPLT_OSSSVCMPLTPDVCMPLTPSVCMPLTSDVCMPLTSSVCMPNEQ_OQPDVCMPNEQ_OQPSVCMPNEQ_OQSDVCMPNEQ_OQSSVCMPNEQ_OSPDVCMPNEQ_OSPSVCMPNEQ_OSSDVCMPNEQ_OSSSVCMPNEQ_UQPDVCMPNEQ_UQPSVCMPNEQ_UQSDVCMPNEQ_UQSSVCMPNEQ_USPDVCMPNEQ_USPSVCMPNEQ_USSDVCMPNEQ_USSSVCMPNEQPDVCMPNEQPSVCMPNEQSDVCMPNEQSSVCMPNGE_UQPDVCMPNGE_UQPSVCMPNGE_UQSDVCMPNGE_UQSSVCMPNGE_USPDVCMPNGE_USPSVCMPNGE_USSDVCMPNGE_USSSVCMPNGEPDVCMPNGEPSVCMPNGESDVCMPNGESSVCMPNGT_UQPDVCMPNGT_UQPSVCMPNGT_UQSDVCMPNGT_UQSSVCMPNGT_USPDVCMPNGT_USPSVCMPNGT_USSDVCMPNGT_USSSVCMPNGTPDVCMPNGTPSVCMPNGTSDVCMPNGTSSVCMPNLE_UQPDVCMPNLE_UQPSVCMPNLE_UQSDVCMPNLE_UQSSVCMPNLE_USPDVCMPNLE_USPSVCMPNLE_USSDVCMPNLE_USSSVCMPNLEPDVCMPNLEPSVCMPNLESDVCMPNLESSVCMPNLT_UQPDVCMPNLT_UQPSVCMPNLT_UQSDVCMPNLT_UQSSVCMPNLT_USPDVCMPNLT_USPSVCMPNLT_USSDVCMPNLT_USSSVCMPNLTPDVCMPNLTPSVCMPNLTSDVCMPNLTSSVCMPORD_QPDVCMPORD_QPSVCMPORD_QSDVCMPORD_QSSVCMPORD_SPDVCMPORD_SPSVCMPORD_SSDVCMPORD_SSSVCMPORDPDVCMPORDPSVCMPORDSDVCMPORDSSVCMPPDVCMPPSVCMPSDVCMPSSVCMPTRUE_UQPDVCMPTRUE_UQPSVCMPTRUE_UQSDVCMPTRUE_UQSSVCMPTRUE_USPDVCMPTRUE_USPSVCMPTRUE_USSDVCMPTRUE_USSSVCMPTRUEPDVCMPTRUEPSVCMPTRUESDVCMPTRUESSVCMPUNORD_QPDVCMPUNORD_QPSVCMPUNORD_QSDVCMPUNORD_QSSVCMPUNORD_SPDVCMPUNORD_SPSVCMPUNORD_SSDVCMPUNORD_SSSVCMPUNORDPDVCMPUNORDPSVCMPUNORDSDVCMPUNORDSSVCOMISDVCOMISSVCVTDQ2PDVCVTDQ2PSVCVTPD2DQVCVTPD2PSVCVTPH2PSVCVTPS2DQVCVTPS2PDVCVTPS2PHVCVTSD2SIVCVTSD2SSVCVTSI2SDVCVTSI2SSVCVTSS2SDVCVTSS2SIVCVTTPD2DQVCVTTPS2DQVCVTTSD2SIVCVTTSS2SIVDIVPDVDIVPSVDIVSDVDIVSSVDPPDVDPPSVERRVERWVEXTRACTF128VEXTRACTI128VEXTRACTPSVFMADD123PDVFMADD123PSVFMADD123SDVFMADD123SSVFMADD132PDVFMADD132PSVFMADD132SDVFMADD132SSVFMADD213PDVFMADD213PSVFMADD213SDVFMADD213SSVFMADD231PDVFMADD231PSVFMADD231SDVFMADD231SSVFMADD312PDVFMADD312PSVFMADD312SDVFMADD312SSVFMADD321PDVFMADD321PSVFMADD321SDVFMADD321SSVFMADDPDVFMADDPSVFMADDSDVFMADDSSVFMADDSUB123PDVFMADDSUB123PSVFMADDSUB132PDVFMADDSUB132PSVFMADDSUB213PDVFMADDSUB213PSVFMADDSUB231PDVFMADDSUB231PSVFMADDSUB312PDVFMADDSUB312PSVFMADDSUB321PDVFMADDSUB321PSVFMADDSUBPDVFMADDSUBPSVFMSUB123PDVFMSUB123PSVFMSUB123SDVFMSUB123SSVFMSUB132PDVFMSUB132PSVFMSUB132SDVFMSUB132SSVFMSUB213PDVFMSUB213PSVFMSUB213SDVFMSUB213SSVFMSUB231PDVFMSUB231PSVFMSUB231SDVFMSUB231SSVFMSUB312PDVFMSUB312PSVFMSUB312SDVFMSUB312SSVFMSUB321PDVFMSUB321PSVFMSUB321SDVFMSUB321SSVFMSUBADD123PDVFMSUBADD123PSVFMSUBADD132PDVFMSUBADD132PSVFMSUBADD213PDVFMSUBADD213PSVFMSUBADD231PDVFMSUBADD231PSVFMSUBADD312PDVFMSUBADD312PSVFMSUBADD321PDVFMSUBADD321PSVFMSUBADDPDVFMSUBADDPSVFMSUBPDVFMSUBPSVFMSUBSDVFMSUBSSVFNMADD123PDVFNMADD123PSVFNMADD123SDVFNMADD123SSVFNMADD132PDVFNMADD132PSVFNMADD132SDVFNMADD132SSVFNMADD213PDVFNMADD213PSVFNMADD213SDVFNMADD213SSVFNMADD231PDVFNMADD231PSVFNMADD231SDVFNMADD231SSVFNMADD312PDVFNMADD312PSVFNMADD312SDVFNMADD312SSVFNMADD321PDVFNMADD321PSVFNMADD321SDVFNMADD321SSVFNMADDPDVFNMADDPSVFNMADDSDVFNMADDSSVFNMSUB123PDVFNMSUB123PSVFNMSUB123SDVFNMSUB123SSVFNMSUB132PDVFNMSUB132PSVFNMSUB132SDVFNMSUB132SSVFNMSUB213PDVFNMSUB213PSVFNMSUB213SDVFNMSUB213SSVFNMSUB231PDVFNMSUB231PSVFNMSUB231SDVFNMSUB231SSVFNMSUB312PDVFNMSUB312PSVFNMSUB312SDVFNMSUB312SSVFNMSUB321PDVFNMSUB321PSVFNMSUB321SDVFNMSUB321SSVFNMSUBPDVFNMSUBPSVFNMSUBSDVFNMSUBSSVFRCZPDVFRCZPSVFRCZSDVFRCZSSVGATHERDPDVGATHERDPSVGATHERQPDVGATHERQPSVHADDPDVHADDPSVHSUBPDVHSUBPSVINSERTF128VINSERTI128VINSERTPSVLDDQUVLDMXCSRVLDQQUVMASKMOVDQUVMASKMOVPDVMASKMOVPSVMAXPDVMAXPSVMAXSDVMAXSSVMCALLVMCLEARVMFUNCVMINPDVMINPSVMINSDVMINSSVMLAUNCHVMLOADVMMCALLVMOVAPDVMOVAPSVMOVDVMOVDDUPVMOVDQAVMOVDQUVMOVHLPSVMOVHPDVMOVHPSVMOVLHPSVMOVLPDVMOVLPSVMOVMSKPDVMOVMSKPSVMOVNTDQVMOVNTDQAVMOVNTPDVMOVNTPSVMOVNTQQVMOVQVMOVQQAVMOVQQUVMOVSDVMOVSHDUPVMOVSLDUPVMOVSSVMOVUPDVMOVUPSVMPSADBWVMPTRLDVMPTRSTVMREADVMRESUMEVMRUNVMSAVEVMULPDVMULPSVMULSDVMULSSVMWRITEVMXOFFVMXONVORPDVORPSVPABSBVPABSDVPABSWVPACKSSDWVPACKSSWBVPACKUSDWVPACKUSWBVPADDBVPADDDVPADDQVPADDSBVPADDSWVPADDUSBVPADDUSWVPADDWVPALIGNRVPANDVPANDNVPAVGBVPAVGWVPBLENDDVPBLENDVBVPBLENDWVPBROADCASTBVPBROADCASTDVPBROADCASTQVPBROADCASTWVPCLMULHQHQDQVPCLMULHQLQDQVPCLMULLQHQDQVPCLMULLQLQDQVPCLMULQDQVPCMOVVPCMPEQBVPCMPEQDVPCMPEQQVPCMPEQWVPCMPESTRIVPCMPESTRMVPCMPGTBVPCMPGTDVPCMPGTQVPCMPGTWVPCMPISTRIVPCMPISTRMVPCOMBVPCOMDVPCOMQVPCOMUBVPCOMUDVPCOMUQVPCOMUWVPCOMWVPERM2F128VPERM2I128VPERMDVPERMILPDVPERMILPSVPERMPDVPERMPSVPERMQVPEXTRBVPEXTRDVPEXTRQVPEXTRWVPGATHERDDVPGATHERDQVPGATHERQDVPGATHERQQVPHADDBDVPHADDBQVPHADDBWVPHADDDVPHADDDQVPHADDSWVPHADDUBDVPHADDUBQVPHADDUBWVPHADDUDQVPHADDUWDVPHADDUWQVPHADDWVPHADDWDVPHADDWQVPHMINPOSUWVPHSUBBWVPHSUBDVPHSUBDQVPHSUBSWVPHSUBWVPHSUBWDVPINSRBVPINSRDVPINSRQVPINSRWVPMACSDDVPMACSDQHVPMACSDQLVPMACSSDDVPMACSSDQHVPMACSSDQLVPMACSSWDVPMACSSWWVPMACSWDVPMACSWWVPMADCSSWDVPMADCSWDVPMADDUBSWVPMADDWDVPMASKMOVDVPMASKMOVQVPMAXSBVPMAXSDVPMAXSWVPMAXUBVPMAXUDVPMAXUWVPMINSBVPMINSDVPMINSWVPMINUBVPMINUDVPMINUWVPMOVMSKBVPMOVSXBDVPMOVSXBQVPMOVSXBWVPMOVSXDQVPMOVSXWDVPMOVSXWQVPMOVZXBDVPMOVZXBQVPMOVZXBWVPMOVZXDQVPMOVZXWDVPMOVZXWQVPMULDQVPMULHRSWVPMULHUWVPMULHWVPMULLDVPMULLWVPMULUDQVPORVPPERMVPROTBVPROTDVPROTQVPROTWVPSADBWVPSHABVPSHADVPSHAQVPSHAWVPSHLBVPSHLDVPSHLQVPSHLWVPSHUFBVPSHUFDVPSHUFHWVPSHUFLWVPSIGNBVPSIGNDVPSIGNWVPSLLDVPSLLDQVPSLLQVPSLLVDVPSLLVQVPSLLWVPSRADVPSRAVDVPSRAWVPSRLDVPSRLDQVPSRLQVPSRLVDVPSRLVQVPSRLWVPSUBBVPSUBDVPSUBQVPSUBSBVPSUBSWVPSUBUSBVPSUBUSWVPSUBWVPTESTVPUNPCKHBWVPUNPCKHDQVPUNPCKHQDQVPUNPCKHWDVPUNPCKLBWVPUNPCKLDQVPUNPCKLQDQVPUNPCKLWDVPXORVRCPPSVRCPSSVROUNDPDVROUNDPSVROUNDSDVROUNDSSVRSQRTPSVRSQRTSSVSHUFPDVSHUFPSVSQRTPDVSQRTPSVSQRTSDVSQRTSSVSTMXCSRVSUBPDVSUBPSVSUBSDVSUBSSVTESTPDVTESTPSVUCOMISDVUCOMISSVUNPCKHPDVUNPCKHPSVUNPCKLPDVUNPCKLPSVXORPDVXORPSVZEROALLVZEROUPPERWBINVDWRFSBASEWRGSBASEWRMSRWRPKRUWRSHRXABORTXADDXBEGINXCHGXCRYPTCBCXCRYPTCFBXCRYPTCTRXCRYPTECBXCRYPTOFBXENDXGETBVXLATXLATBXORXORPDXORPSXRSTORXRSTOR64XRSTORS64XSAVEXSAVE64XSAVEC64XSAVEOPT64XSAVES64XSETBVXSHA1XSHA256XSTOREXTEST"

var instNameOffsets = [...]uint16{
	0, 3, 6, 9, 12, 15, 19, 22, 27, 32, 37, 42, 50, 58, 62, 68, 78, 84, 94, 100, 115, 118, 122, 128,
	134, 139, 144, 148, 153, 160, 164, 169, 175, 179, 186, 193, 201, 209, 216, 220, 225, 231, 235,
	240, 245, 250, 256, 261, 267, 273, 278, 281, 284, 289, 291, 294, 297, 300, 304, 308, 313, 316,
	319, 323, 327, 330, 333, 340, 344, 347, 351, 357, 360, 365, 371, 376, 382, 387, 392, 397, 403,
	408, 414, 420, 427, 433, 440, 446, 452, 458, 465, 471, 478, 484, 490, 496, 502, 507, 512, 518,
	524, 529, 534, 537, 544, 551, 558, 565, 572, 579, 586, 593, 600, 607, 614, 621, 629, 637, 645,
	653, 661, 669, 677, 685, 693, 701, 709, 717, 725, 733, 741, 749, 754, 759, 764, 769, 774, 779,
	784, 794, 804, 814, 824, 831, 841, 850, 856, 862, 870, 879, 884, 887, 892, 900, 908, 916, 924,
	932, 940, 948, 956, 964, 972, 980, 988, 996, 1004, 1012, 1020, 1029, 1038, 1047, 1056, 1065, 1074,
	1077, 1081, 1084, 1087, 1090, 1093, 1098, 1103, 1108, 1113, 1118, 1122, 1126, 1130, 1135, 1144,
	1149, 1154, 1158, 1162, 1167, 1171, 1176, 1180, 1185, 1191, 1198, 1204, 1211, 1219, 1226, 1233,
	1239, 1243, 1248, 1254, 1259, 1265, 1269, 1276, 1281, 1285, 1290, 1295, 1301, 1306, 1310, 1315,
	1320, 1325, 1331, 1336, 1342, 1346, 1351, 1358, 1363, 1367, 1372, 1378, 1383, 1389, 1392, 1396,
	1401, 1407, 1413, 1419, 1425, 1431, 1436, 1440, 1444, 1449, 1455, 1461, 1466, 1472, 1476, 1482,
	1488, 1495, 1501, 1507, 1512, 1518, 1523, 1530, 1536, 1541, 1547, 1553, 1557, 1564, 1569, 1572,
	1577, 1583, 1587, 1592, 1596, 1601, 1606, 1612, 1616, 1621, 1627, 1634, 1640, 1647, 1652, 1656,
	1660, 1667, 1676, 1682, 1690, 1697, 1702, 1709, 1715, 1721, 1727, 1730, 1736, 1742, 1747, 1751,
	1755, 1757, 1760, 1764, 1768, 1776, 1783, 1787, 1790, 1795, 1800, 1804, 1808, 1812, 1816, 1822,
	1828, 1835, 1842, 1849, 1853, 1858, 1863, 1868, 1870, 1873, 1875, 1878, 1880, 1882, 1887, 1889,
	1892, 1894, 1897, 1900, 1904, 1907, 1911, 1914, 1918, 1921, 1924, 1927, 1931, 1934, 1938, 1941,
	1944, 1947, 1950, 1952, 1954, 1957, 1960, 1965, 1967, 1969, 1973, 1976, 1981, 1988, 1991, 1994,
	1999, 2002, 2008, 2011, 2015, 2018, 2022, 2026, 2032, 2036, 2041, 2046, 2051, 2056, 2060, 2065,
	2071, 2077, 2082, 2085, 2088, 2091, 2097, 2103, 2108, 2118, 2126, 2131, 2136, 2141, 2146, 2152,
	2157, 2162, 2167, 2172, 2179, 2187, 2194, 2197, 2203, 2209, 2215, 2220, 2224, 2231, 2238, 2244,
	2250, 2257, 2263, 2269, 2276, 2282, 2288, 2296, 2304, 2311, 2319, 2325, 2332, 2339, 2345, 2352,
	2359, 2363, 2370, 2375, 2380, 2388, 2396, 2401, 2406, 2411, 2416, 2422, 2428, 2434, 2439, 2446,
	2449, 2454, 2459, 2464, 2469, 2473, 2478, 2484, 2487, 2490, 2493, 2495, 2499, 2503, 2506, 2511,
	2516, 2521, 2526, 2531, 2536, 2544, 2552, 2560, 2568, 2573, 2578, 2583, 2589, 2596, 2602, 2609,
	2616, 2621, 2628, 2632, 2637, 2642, 2647, 2652, 2659, 2664, 2672, 2679, 2691, 2703, 2715, 2727,
	2736, 2743, 2750, 2757, 2764, 2773, 2782, 2789, 2796, 2803, 2810, 2819, 2828, 2832, 2839, 2843,
	2849, 2855, 2861, 2867, 2872, 2877, 2882, 2887, 2894, 2901, 2908, 2913, 2918, 2923, 2929, 2936,
	2941, 2949, 2957, 2963, 2971, 2978, 2986, 2991, 2997, 3003, 3010, 3016, 3026, 3032, 3039, 3045,
	3050, 3055, 3061, 3067, 3073, 3079, 3087, 3096, 3103, 3108, 3114, 3120, 3126, 3132, 3138, 3144,
	3150, 3156, 3162, 3168, 3174, 3180, 3188, 3196, 3204, 3212, 3220, 3228, 3236, 3244, 3252, 3260,
	3268, 3276, 3284, 3290, 3298, 3306, 3314, 3322, 3329, 3335, 3341, 3347, 3354, 3361, 3367, 3373,
	3378, 3381, 3385, 3390, 3396, 3400, 3405, 3410, 3413, 3421, 3432, 3442, 3452, 3462, 3471, 3482,
	3488, 3494, 3500, 3507, 3514, 3520, 3526, 3532, 3538, 3543, 3549, 3554, 3559, 3564, 3569, 3574,
	3580, 3585, 3590, 3595, 3600, 3605, 3611, 3618, 3624, 3631, 3638, 3643, 3649, 3654, 3663, 3672,
	3682, 3691, 3700, 3709, 3719, 3728, 3732, 3737, 3743, 3748, 3754, 3760, 3764, 3767, 3772, 3777,
	3780, 3788, 3796, 3799, 3804, 3809, 3815, 3820, 3826, 3832, 3837, 3842, 3848, 3851, 3855, 3859,
	3862, 3865, 3869, 3876, 3883, 3890, 3897, 3901, 3906, 3909, 3916, 3923, 3927, 3931, 3934, 3937,
	3941, 3944, 3949, 3954, 3959, 3964, 3968, 3973, 3977, 3982, 3986, 3990, 3994, 3999, 4003, 4008,
	4013, 4019, 4024, 4030, 4035, 4040, 4045, 4051, 4056, 4062, 4067, 4072, 4077, 4082, 4086, 4090,
	4095, 4100, 4104, 4108, 4114, 4118, 4126, 4134, 4143, 4152, 4162, 4172, 4183, 4186, 4190, 4194,
	4197, 4201, 4205, 4211, 4217, 4221, 4227, 4231, 4237, 4242, 4246, 4252, 4258, 4264, 4270, 4274,
	4277, 4280, 4284, 4287, 4294, 4299, 4304, 4309, 4314, 4317, 4320, 4325, 4330, 4335, 4340, 4344,
	4349, 4353, 4359, 4366, 4374, 4381, 4387, 4393, 4397, 4402, 4407, 4414, 4421, 4424, 4428, 4436,
	4444, 4452, 4460, 4466, 4472, 4478, 4484, 4493, 4502, 4509, 4520, 4527, 4538, 4545, 4561, 4568,
	4575, 4581, 4587, 4595, 4603, 4612, 4621, 4635, 4649, 4661, 4673, 4684, 4695, 4706, 4717, 4728,
	4739, 4750, 4761, 4772, 4783, 4794, 4805, 4813, 4821, 4829, 4837, 4851, 4865, 4879, 4893, 4907,
	4921, 4935, 4949, 4960, 4971, 4982, 4993, 5004, 5015, 5026, 5037, 5048, 5059, 5070, 5081, 5089,
	5097, 5105, 5113, 5124, 5135, 5146, 5157, 5168, 5179, 5190, 5201, 5209, 5217, 5225, 5233, 5244,
	5255, 5266, 5277, 5288, 5299, 5310, 5321, 5329, 5337, 5345, 5353, 5364, 5375, 5386, 5397, 5408,
	5419, 5430, 5441, 5449, 5457, 5465, 5473, 5485, 5497, 5509, 5521, 5533, 5545, 5557, 5569, 5581,
	5593, 5605, 5617, 5629, 5641, 5653, 5665, 5674, 5683, 5692, 5701, 5713, 5725, 5737, 5749, 5761,
	5773, 5785, 5797, 5806, 5815, 5824, 5833, 5845, 5857, 5869, 5881, 5893, 5905, 5917, 5929, 5938,
	5947, 5956, 5965, 5977, 5989, 6001, 6013, 6025, 6037, 6049, 6061, 6070, 6079, 6088, 6097, 6109,
	6121, 6133, 6145, 6157, 6169, 6181, 6193, 6202, 6211, 6220, 6229, 6240, 6251, 6262, 6273, 6284,
	6295, 6306, 6317, 6326, 6335, 6344, 6353, 6359, 6365, 6371, 6377, 6390, 6403, 6416, 6429, 6442,
	6455, 6468, 6481, 6491, 6501, 6511, 6521, 6534, 6547, 6560, 6573, 6586, 6599, 6612, 6625, 6636,
	6647, 6658, 6669, 6676, 6683, 6692, 6701, 6710, 6719, 6728, 6737, 6746, 6755, 6764, 6773, 6782,
	6791, 6800, 6809, 6819, 6829, 6839, 6849, 6855, 6861, 6867, 6873, 6878, 6883, 6887, 6891, 6903,
	6915, 6925, 6936, 6947, 6958, 6969, 6980, 6991, 7002, 7013, 7024, 7035, 7046, 7057, 7068, 7079,
	7090, 7101, 7112, 7123, 7134, 7145, 7156, 7167, 7178, 7189, 7197, 7205, 7213, 7221, 7235, 7249,
	7263, 7277, 7291, 7305, 7319, 7333, 7347, 7361, 7375, 7389, 7400, 7411, 7422, 7433, 7444, 7455,
	7466, 7477, 7488, 7499, 7510, 7521, 7532, 7543, 7554, 7565, 7576, 7587, 7598, 7609, 7620, 7631,
	7642, 7653, 7664, 7675, 7689, 7703, 7717, 7731, 7745, 7759, 7773, 7787, 7801, 7815, 7829, 7843,
	7854, 7865, 7873, 7881, 7889, 7897, 7909, 7921, 7933, 7945, 7957, 7969, 7981, 7993, 8005, 8017,
	8029, 8041, 8053, 8065, 8077, 8089, 8101, 8113, 8125, 8137, 8149, 8161, 8173, 8185, 8194, 8203,
	8212, 8221, 8233, 8245, 8257, 8269, 8281, 8293, 8305, 8317, 8329, 8341, 8353, 8365, 8377, 8389,
	8401, 8413, 8425, 8437, 8449, 8461, 8473, 8485, 8497, 8509, 8518, 8527, 8536, 8545, 8552, 8559,
	8566, 8573, 8583, 8593, 8603, 8613, 8620, 8627, 8634, 8641, 8652, 8663, 8672, 8678, 8686, 8692,
	8703, 8713, 8723, 8729, 8735, 8741, 8747, 8753, 8760, 8766, 8772, 8778, 8784, 8790, 8798, 8804,
	8811, 8818, 8825, 8830, 8838, 8845, 8852, 8860, 8867, 8874, 8882, 8889, 8896, 8905, 8914, 8922,
	8931, 8939, 8947, 8955, 8960, 8967, 8974, 8980, 8989, 8998, 9004, 9011, 9018, 9026, 9033, 9040,
	9046, 9054, 9059, 9065, 9071, 9077, 9083, 9089, 9096, 9102, 9107, 9112, 9117, 9123, 9129, 9135,
	9144, 9153, 9162, 9171, 9177, 9183, 9189, 9196, 9203, 9211, 9219, 9225, 9233, 9238, 9244, 9250,
	9256, 9264, 9273, 9281, 9293, 9305, 9317, 9329, 9342, 9355, 9368, 9381, 9391, 9397, 9405, 9413,
	9421, 9429, 9439, 9449, 9457, 9465, 9473, 9481, 9491, 9501, 9507, 9513, 9519, 9526, 9533, 9540,
	9547, 9553, 9563, 9573, 9579, 9588, 9597, 9604, 9611, 9617, 9624, 9631, 9638, 9645, 9655, 9665,
	9675, 9685, 9693, 9701, 9709, 9716, 9724, 9732, 9741, 9750, 9759, 9768, 9777, 9786, 9793, 9801,
	9809, 9820, 9828, 9835, 9843, 9851, 9858, 9866, 9873, 9880, 9887, 9894, 9902, 9911, 9920, 9929,
	9939, 9949, 9958, 9967, 9975, 9983, 9993, 10002, 10012, 10020, 10030, 10040, 10047, 10054, 10061,
	10068, 10075, 10082, 10089, 10096, 10103, 10110, 10117, 10124, 10133, 10142, 10151, 10160, 10169,
	10178, 10187, 10196, 10205, 10214, 10223, 10232, 10241, 10248, 10257, 10265, 10272, 10279, 10286,
	10294, 10298, 10304, 10310, 10316, 10322, 10328, 10335, 10341, 10347, 10353, 10359, 10365, 10371,
	10377, 10383, 10390, 10397, 10405, 10413, 10420, 10427, 10434, 10440, 10447, 10453, 10460, 10467,
	10473, 10479, 10486, 10492, 10498, 10505, 10511, 10518, 10525, 10531, 10537, 10543, 10549, 10556,
	10563, 10571, 10579, 10585, 10591, 10601, 10611, 10622, 10632, 10642, 10652, 10663, 10673, 10678,
	10684, 10690, 10698, 10706, 10714, 10722, 10730, 10738, 10745, 10752, 10759, 10766, 10773, 10780,
	10788, 10794, 10800, 10806, 10812, 10819, 10826, 10834, 10842, 10851, 10860, 10869, 10878, 10884,
	10890, 10898, 10908, 10914, 10922, 10930, 10935, 10941, 10946, 10952, 10956, 10962, 10966, 10975,
	10984, 10993, 11002, 11011, 11015, 11021, 11025, 11030, 11033, 11038, 11043, 11049, 11057, 11066,
	11071, 11078, 11086, 11096, 11104, 11110, 11115, 11122, 11128,
}

var encs = [...]enc{
	// aaa
	{[4]byte{0x37}, flags.X86_ONLY, 0, 0<<11 | 1, 1<<4 | 15, argp_},
	// aad
	{[4]byte{0xD5, 0x0A}, flags.X86_ONLY, 0, 0<<11 | 2, 2<<4 | 15, argp_},
	// aam
	{[4]byte{0xD4, 0x0A}, flags.X86_ONLY, 0, 0<<11 | 3, 2<<4 | 15, argp_},
	// aas
	{[4]byte{0x3F}, flags.X86_ONLY, 0, 0<<11 | 4, 1<<4 | 15, argp_},
	// adc
	{[4]byte{0x14}, 0, 0, 0<<11 | 5, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 5, 1<<4 | 2, argp_mbib},
	{[4]byte{0x10}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 5, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 5, 1<<4 | 2, argp_rbib},
	{[4]byte{0x10}, flags.ENC_MR, 0, 4<<11 | 5, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x12}, 0, 0, 5<<11 | 5, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 5, 1<<4 | 2, argp_r0ib},
	{[4]byte{0x15}, flags.AUTO_SIZE, 0, 7<<11 | 5, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 5, 1<<4 | 2, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 5, 1<<4 | 2, argp_m0ib},
	{[4]byte{0x11}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 5, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 5, 1<<4 | 2, argp_r0i0},
	{[4]byte{0x11}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 5, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x13}, flags.AUTO_SIZE, 0, 13<<11 | 5, 1<<4 | 15, argp_r0v0},
	// adcx
	{[4]byte{0x0F, 0x38, 0xF6}, flags.WITH_REXW | flags.PREF_66, 0, 0<<11 | 6, 3<<4 | 15, argp_rqvq},
	// add
	{[4]byte{0x04}, 0, 0, 0<<11 | 7, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 7, 1<<4 | 0, argp_mbib},
	{[4]byte{0x00}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 7, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 7, 1<<4 | 0, argp_rbib},
	{[4]byte{0x00}, flags.ENC_MR, 0, 4<<11 | 7, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x02}, 0, 0, 5<<11 | 7, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 7, 1<<4 | 0, argp_r0ib},
	{[4]byte{0x05}, flags.AUTO_SIZE, 0, 7<<11 | 7, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 7, 1<<4 | 0, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 7, 1<<4 | 0, argp_m0ib},
	{[4]byte{0x01}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 7, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 7, 1<<4 | 0, argp_r0i0},
	{[4]byte{0x01}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 7, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x03}, flags.AUTO_SIZE, 0, 13<<11 | 7, 1<<4 | 15, argp_r0v0},
	// addpd
	{[4]byte{0x0F, 0x58}, flags.PREF_66, feats.SSE2, 0<<11 | 8, 2<<4 | 15, argp_yowo},
	// addps
	{[4]byte{0x0F, 0x58}, 0, feats.SSE, 0<<11 | 9, 2<<4 | 15, argp_yowo},
	// addsd
	{[4]byte{0x0F, 0x58}, flags.PREF_F2, feats.SSE2, 0<<11 | 10, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x58}, flags.PREF_F2, feats.SSE2, 1<<11 | 10, 2<<4 | 15, argp_yoyo},
	// addss
	{[4]byte{0x0F, 0x58}, flags.PREF_F3, feats.SSE, 0<<11 | 11, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x58}, flags.PREF_F3, feats.SSE, 1<<11 | 11, 2<<4 | 15, argp_yoyo},
	// addsubpd
	{[4]byte{0x0F, 0xD0}, flags.PREF_66, feats.SSE3, 0<<11 | 12, 2<<4 | 15, argp_yowo},
	// addsubps
	{[4]byte{0x0F, 0xD0}, flags.PREF_F2, feats.SSE3, 0<<11 | 13, 2<<4 | 15, argp_yowo},
	// adox
	{[4]byte{0x0F, 0x38, 0xF6}, flags.WITH_REXW | flags.PREF_F3, 0, 0<<11 | 14, 3<<4 | 15, argp_rqvq},
	// aesdec
	{[4]byte{0x0F, 0x38, 0xDE}, flags.PREF_66, feats.SSE, 0<<11 | 15, 3<<4 | 15, argp_yowo},
	// aesdeclast
	{[4]byte{0x0F, 0x38, 0xDF}, flags.PREF_66, feats.SSE, 0<<11 | 16, 3<<4 | 15, argp_yowo},
	// aesenc
	{[4]byte{0x0F, 0x38, 0xDC}, flags.PREF_66, feats.SSE, 0<<11 | 17, 3<<4 | 15, argp_yowo},
	// aesenclast
	{[4]byte{0x0F, 0x38, 0xDD}, flags.PREF_66, feats.SSE, 0<<11 | 18, 3<<4 | 15, argp_yowo},
	// aesimc
	{[4]byte{0x0F, 0x38, 0xDB}, flags.PREF_66, feats.SSE, 0<<11 | 19, 3<<4 | 15, argp_yowo},
	// aeskeygenassist
	{[4]byte{0x0F, 0x3A, 0xDF}, flags.PREF_66, feats.SSE, 0<<11 | 20, 3<<4 | 15, argp_yowoib},
	// and
	{[4]byte{0x24}, 0, 0, 0<<11 | 21, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 21, 1<<4 | 4, argp_mbib},
	{[4]byte{0x20}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 21, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 21, 1<<4 | 4, argp_rbib},
	{[4]byte{0x20}, flags.ENC_MR, 0, 4<<11 | 21, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x22}, 0, 0, 5<<11 | 21, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 21, 1<<4 | 4, argp_r0ib},
	{[4]byte{0x25}, flags.AUTO_SIZE, 0, 7<<11 | 21, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 21, 1<<4 | 4, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 21, 1<<4 | 4, argp_m0ib},
	{[4]byte{0x21}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 21, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 21, 1<<4 | 4, argp_r0i0},
	{[4]byte{0x21}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 21, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x23}, flags.AUTO_SIZE, 0, 13<<11 | 21, 1<<4 | 15, argp_r0v0},
	// andn
	{[4]byte{0x02, 0xF2}, flags.VEX_OP | flags.AUTO_REXW, feats.BMI1, 0<<11 | 22, 2<<4 | 15, argp_r0r0v0},
	// andnpd
	{[4]byte{0x0F, 0x55}, flags.PREF_66, feats.SSE2, 0<<11 | 23, 2<<4 | 15, argp_yowo},
	// andnps
	{[4]byte{0x0F, 0x55}, 0, feats.SSE, 0<<11 | 24, 2<<4 | 15, argp_yowo},
	// andpd
	{[4]byte{0x0F, 0x54}, flags.PREF_66, feats.SSE2, 0<<11 | 25, 2<<4 | 15, argp_yowo},
	// andps
	{[4]byte{0x0F, 0x54}, 0, feats.SSE, 0<<11 | 26, 2<<4 | 15, argp_yowo},
	// arpl
	{[4]byte{0x63}, flags.X86_ONLY, 0, 0<<11 | 27, 1<<4 | 15, argp_vwrw},
	// bextr
	{[4]byte{0x10, 0x10}, flags.XOP_OP | flags.AUTO_REXW, feats.TBM, 0<<11 | 28, 2<<4 | 15, argp_r0v0id},
	{[4]byte{0x02, 0xF7}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_MR, feats.BMI1, 1<<11 | 28, 2<<4 | 15, argp_r0v0r0},
	// blcfill
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 29, 2<<4 | 1, argp_r0v0},
	// blci
	{[4]byte{0x09, 0x02}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 30, 2<<4 | 6, argp_r0v0},
	// blcic
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 31, 2<<4 | 5, argp_r0v0},
	// blcmsk
	{[4]byte{0x09, 0x02}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 32, 2<<4 | 1, argp_r0v0},
	// blcs
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 33, 2<<4 | 3, argp_r0v0},
	// blendpd
	{[4]byte{0x0F, 0x3A, 0x0D}, flags.PREF_66, feats.SSE41, 0<<11 | 34, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0D}, flags.PREF_66, feats.SSE41, 1<<11 | 34, 3<<4 | 15, argp_yoyoib},
	// blendps
	{[4]byte{0x0F, 0x3A, 0x0C}, flags.PREF_66, feats.SSE41, 0<<11 | 35, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0C}, flags.PREF_66, feats.SSE41, 1<<11 | 35, 3<<4 | 15, argp_yoyoib},
	// blendvpd
	{[4]byte{0x0F, 0x38, 0x15}, flags.PREF_66, feats.SSE41, 0<<11 | 36, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x15}, flags.PREF_66, feats.SSE41, 1<<11 | 36, 3<<4 | 15, argp_yoyo},
	// blendvps
	{[4]byte{0x0F, 0x38, 0x14}, flags.PREF_66, feats.SSE41, 0<<11 | 37, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x14}, flags.PREF_66, feats.SSE41, 1<<11 | 37, 3<<4 | 15, argp_yoyo},
	// blsfill
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 38, 2<<4 | 2, argp_r0v0},
	// blsi
	{[4]byte{0x02, 0xF3}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_VM, feats.BMI1, 0<<11 | 39, 2<<4 | 3, argp_r0v0},
	// blsic
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 40, 2<<4 | 6, argp_r0v0},
	// blsmsk
	{[4]byte{0x02, 0xF3}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_VM, feats.BMI1, 0<<11 | 41, 2<<4 | 2, argp_r0v0},
	// blsr
	{[4]byte{0x02, 0xF3}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_VM, feats.BMI1, 0<<11 | 42, 2<<4 | 1, argp_r0v0},
	// bndcl
	{[4]byte{0x0F, 0x1A}, flags.PREF_F3, feats.MPX, 0<<11 | 43, 2<<4 | 15, argp_bom1},
	{[4]byte{0x0F, 0x1A}, flags.PREF_F3, feats.MPX, 1<<11 | 43, 2<<4 | 15, argp_borq},
	// bndcn
	{[4]byte{0x0F, 0x1B}, flags.PREF_F2, feats.MPX, 0<<11 | 44, 2<<4 | 15, argp_bom1},
	{[4]byte{0x0F, 0x1B}, flags.PREF_F2, feats.MPX, 1<<11 | 44, 2<<4 | 15, argp_borq},
	// bndcu
	{[4]byte{0x0F, 0x1A}, flags.PREF_F2, feats.MPX, 0<<11 | 45, 2<<4 | 15, argp_bom1},
	{[4]byte{0x0F, 0x1A}, flags.PREF_F2, feats.MPX, 1<<11 | 45, 2<<4 | 15, argp_borq},
	// bndldx
	{[4]byte{0x0F, 0x1A}, flags.ENC_MIB, feats.MPX, 0<<11 | 46, 2<<4 | 15, argp_bom1},
	// bndmk
	{[4]byte{0x0F, 0x1B}, flags.ENC_MIB | flags.PREF_F3, feats.MPX, 0<<11 | 47, 2<<4 | 15, argp_bom1},
	// bndmov
	{[4]byte{0x0F, 0x1A}, flags.PREF_66, feats.MPX, 0<<11 | 48, 2<<4 | 15, argp_bobo},
	{[4]byte{0x0F, 0x1B}, flags.ENC_MR | flags.PREF_66, feats.MPX, 1<<11 | 48, 2<<4 | 15, argp_bobo},
	{[4]byte{0x0F, 0x1A}, flags.PREF_66, feats.MPX, 2<<11 | 48, 2<<4 | 15, argp_bom1},
	{[4]byte{0x0F, 0x1B}, flags.ENC_MR | flags.PREF_66, feats.MPX, 3<<11 | 48, 2<<4 | 15, argp_m1bo},
	// bndstx
	{[4]byte{0x0F, 0x1B}, flags.ENC_MR | flags.ENC_MIB, feats.MPX, 0<<11 | 49, 2<<4 | 15, argp_m1bo},
	// bound
	{[4]byte{0x62}, flags.AUTO_SIZE | flags.X86_ONLY, 0, 0<<11 | 50, 1<<4 | 15, argp_r0m1},
	// bsf
	{[4]byte{0x0F, 0xBC}, flags.AUTO_SIZE, 0, 0<<11 | 51, 2<<4 | 15, argp_r0v0},
	// bsr
	{[4]byte{0x0F, 0xBD}, flags.AUTO_SIZE, 0, 0<<11 | 52, 2<<4 | 15, argp_r0v0},
	// bswap
	{[4]byte{0x0F, 0xC8}, flags.AUTO_REXW | flags.SHORT_ARG, 0, 0<<11 | 53, 2<<4 | 15, argp_r0},
	// bt
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE, 0, 0<<11 | 54, 2<<4 | 4, argp_v0ib},
	{[4]byte{0x0F, 0xA3}, flags.AUTO_SIZE | flags.ENC_MR, 0, 1<<11 | 54, 2<<4 | 15, argp_v0r0},
	// btc
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 55, 2<<4 | 7, argp_r0ib},
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.LOCK, 0, 1<<11 | 55, 2<<4 | 7, argp_m0ib},
	{[4]byte{0x0F, 0xBB}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 2<<11 | 55, 2<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0xBB}, flags.AUTO_SIZE | flags.ENC_MR, 0, 3<<11 | 55, 2<<4 | 15, argp_r0r0},
	// btr
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 56, 2<<4 | 6, argp_r0ib},
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.LOCK, 0, 1<<11 | 56, 2<<4 | 6, argp_m0ib},
	{[4]byte{0x0F, 0xB3}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 2<<11 | 56, 2<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0xB3}, flags.AUTO_SIZE | flags.ENC_MR, 0, 3<<11 | 56, 2<<4 | 15, argp_r0r0},
	// bts
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 57, 2<<4 | 5, argp_r0ib},
	{[4]byte{0x0F, 0xBA}, flags.AUTO_SIZE | flags.LOCK, 0, 1<<11 | 57, 2<<4 | 5, argp_m0ib},
	{[4]byte{0x0F, 0xAB}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 2<<11 | 57, 2<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0xAB}, flags.AUTO_SIZE | flags.ENC_MR, 0, 3<<11 | 57, 2<<4 | 15, argp_r0r0},
	// bzhi
	{[4]byte{0x02, 0xF5}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_MR, feats.BMI2, 0<<11 | 58, 2<<4 | 15, argp_r0v0r0},
	// call
	{[4]byte{0x9A}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 59, 1<<4 | 15, argp_iwiw},
	{[4]byte{0x9A}, flags.X86_ONLY, 0, 1<<11 | 59, 1<<4 | 15, argp_idiw},
	{[4]byte{0xFF}, flags.X86_ONLY | flags.EXACT_SIZE, 0, 2<<11 | 59, 1<<4 | 3, argp_mf},
	{[4]byte{0xE8}, 0, 0, 3<<11 | 59, 1<<4 | 15, argp_od},
	{[4]byte{0xFF}, flags.AUTO_NO32, 0, 4<<11 | 59, 1<<4 | 2, argp_v0},
	// callf
	{[4]byte{0x9A}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 60, 1<<4 | 15, argp_iwiw},
	{[4]byte{0x9A}, flags.X86_ONLY, 0, 1<<11 | 60, 1<<4 | 15, argp_idiw},
	{[4]byte{0xFF}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 2<<11 | 60, 1<<4 | 3, argp_md},
	{[4]byte{0xFF}, flags.X86_ONLY, 0, 3<<11 | 60, 1<<4 | 3, argp_mf},
	// cbw
	{[4]byte{0x98}, flags.WORD_SIZE, 0, 0<<11 | 61, 1<<4 | 15, argp_},
	// cdq
	{[4]byte{0x99}, 0, 0, 0<<11 | 62, 1<<4 | 15, argp_},
	// cdqe
	{[4]byte{0x98}, flags.WITH_REXW, 0, 0<<11 | 63, 1<<4 | 15, argp_},
	// clac
	{[4]byte{0x0F, 0x01, 0xCA}, 0, 0, 0<<11 | 64, 3<<4 | 15, argp_},
	// clc
	{[4]byte{0xF8}, 0, 0, 0<<11 | 65, 1<<4 | 15, argp_},
	// cld
	{[4]byte{0xFC}, 0, 0, 0<<11 | 66, 1<<4 | 15, argp_},
	// clflush
	{[4]byte{0x0F, 0xAE}, 0, feats.SSE2, 0<<11 | 67, 2<<4 | 7, argp_mb},
	// clgi
	{[4]byte{0x0F, 0x01, 0xDD}, 0, feats.VMX | feats.AMD, 0<<11 | 68, 3<<4 | 15, argp_},
	// cli
	{[4]byte{0xFA}, 0, 0, 0<<11 | 69, 1<<4 | 15, argp_},
	// clts
	{[4]byte{0x0F, 0x06}, 0, 0, 0<<11 | 70, 2<<4 | 15, argp_},
	// clzero
	{[4]byte{0x0F, 0x01, 0xFC}, 0, feats.AMD, 0<<11 | 71, 3<<4 | 15, argp_},
	// cmc
	{[4]byte{0xF5}, 0, 0, 0<<11 | 72, 1<<4 | 15, argp_},
	// cmova
	{[4]byte{0x0F, 0x47}, flags.AUTO_SIZE, 0, 0<<11 | 73, 2<<4 | 15, argp_r0v0},
	// cmovae
	{[4]byte{0x0F, 0x43}, flags.AUTO_SIZE, 0, 0<<11 | 74, 2<<4 | 15, argp_r0v0},
	// cmovb
	{[4]byte{0x0F, 0x42}, flags.AUTO_SIZE, 0, 0<<11 | 75, 2<<4 | 15, argp_r0v0},
	// cmovbe
	{[4]byte{0x0F, 0x46}, flags.AUTO_SIZE, 0, 0<<11 | 76, 2<<4 | 15, argp_r0v0},
	// cmovc
	{[4]byte{0x0F, 0x42}, flags.AUTO_SIZE, 0, 0<<11 | 77, 2<<4 | 15, argp_r0v0},
	// cmove
	{[4]byte{0x0F, 0x44}, flags.AUTO_SIZE, 0, 0<<11 | 78, 2<<4 | 15, argp_r0v0},
	// cmovg
	{[4]byte{0x0F, 0x4F}, flags.AUTO_SIZE, 0, 0<<11 | 79, 2<<4 | 15, argp_r0v0},
	// cmovge
	{[4]byte{0x0F, 0x4D}, flags.AUTO_SIZE, 0, 0<<11 | 80, 2<<4 | 15, argp_r0v0},
	// cmovl
	{[4]byte{0x0F, 0x4C}, flags.AUTO_SIZE, 0, 0<<11 | 81, 2<<4 | 15, argp_r0v0},
	// cmovle
	{[4]byte{0x0F, 0x4E}, flags.AUTO_SIZE, 0, 0<<11 | 82, 2<<4 | 15, argp_r0v0},
	// cmovna
	{[4]byte{0x0F, 0x46}, flags.AUTO_SIZE, 0, 0<<11 | 83, 2<<4 | 15, argp_r0v0},
	// cmovnae
	{[4]byte{0x0F, 0x42}, flags.AUTO_SIZE, 0, 0<<11 | 84, 2<<4 | 15, argp_r0v0},
	// cmovnb
	{[4]byte{0x0F, 0x43}, flags.AUTO_SIZE, 0, 0<<11 | 85, 2<<4 | 15, argp_r0v0},
	// cmovnbe
	{[4]byte{0x0F, 0x47}, flags.AUTO_SIZE, 0, 0<<11 | 86, 2<<4 | 15, argp_r0v0},
	// cmovnc
	{[4]byte{0x0F, 0x43}, flags.AUTO_SIZE, 0, 0<<11 | 87, 2<<4 | 15, argp_r0v0},
	// cmovne
	{[4]byte{0x0F, 0x45}, flags.AUTO_SIZE, 0, 0<<11 | 88, 2<<4 | 15, argp_r0v0},
	// cmovng
	{[4]byte{0x0F, 0x4E}, flags.AUTO_SIZE, 0, 0<<11 | 89, 2<<4 | 15, argp_r0v0},
	// cmovnge
	{[4]byte{0x0F, 0x4C}, flags.AUTO_SIZE, 0, 0<<11 | 90, 2<<4 | 15, argp_r0v0},
	// cmovnl
	{[4]byte{0x0F, 0x4D}, flags.AUTO_SIZE, 0, 0<<11 | 91, 2<<4 | 15, argp_r0v0},
	// cmovnle
	{[4]byte{0x0F, 0x4F}, flags.AUTO_SIZE, 0, 0<<11 | 92, 2<<4 | 15, argp_r0v0},
	// cmovno
	{[4]byte{0x0F, 0x41}, flags.AUTO_SIZE, 0, 0<<11 | 93, 2<<4 | 15, argp_r0v0},
	// cmovnp
	{[4]byte{0x0F, 0x4B}, flags.AUTO_SIZE, 0, 0<<11 | 94, 2<<4 | 15, argp_r0v0},
	// cmovns
	{[4]byte{0x0F, 0x49}, flags.AUTO_SIZE, 0, 0<<11 | 95, 2<<4 | 15, argp_r0v0},
	// cmovnz
	{[4]byte{0x0F, 0x45}, flags.AUTO_SIZE, 0, 0<<11 | 96, 2<<4 | 15, argp_r0v0},
	// cmovo
	{[4]byte{0x0F, 0x40}, flags.AUTO_SIZE, 0, 0<<11 | 97, 2<<4 | 15, argp_r0v0},
	// cmovp
	{[4]byte{0x0F, 0x4A}, flags.AUTO_SIZE, 0, 0<<11 | 98, 2<<4 | 15, argp_r0v0},
	// cmovpe
	{[4]byte{0x0F, 0x4A}, flags.AUTO_SIZE, 0, 0<<11 | 99, 2<<4 | 15, argp_r0v0},
	// cmovpo
	{[4]byte{0x0F, 0x4B}, flags.AUTO_SIZE, 0, 0<<11 | 100, 2<<4 | 15, argp_r0v0},
	// cmovs
	{[4]byte{0x0F, 0x48}, flags.AUTO_SIZE, 0, 0<<11 | 101, 2<<4 | 15, argp_r0v0},
	// cmovz
	{[4]byte{0x0F, 0x44}, flags.AUTO_SIZE, 0, 0<<11 | 102, 2<<4 | 15, argp_r0v0},
	// cmp
	{[4]byte{0x3C}, 0, 0, 0<<11 | 103, 1<<4 | 15, argp_Abib},
	{[4]byte{0x3A}, 0, 0, 1<<11 | 103, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x80}, 0, 0, 2<<11 | 103, 1<<4 | 7, argp_vbib},
	{[4]byte{0x38}, flags.ENC_MR, 0, 3<<11 | 103, 1<<4 | 15, argp_vbrb},
	{[4]byte{0x3D}, flags.AUTO_SIZE, 0, 4<<11 | 103, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x3B}, flags.AUTO_SIZE, 0, 5<<11 | 103, 1<<4 | 15, argp_r0v0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 6<<11 | 103, 1<<4 | 7, argp_v0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE, 0, 7<<11 | 103, 1<<4 | 7, argp_v0ib},
	{[4]byte{0x39}, flags.AUTO_SIZE | flags.ENC_MR, 0, 8<<11 | 103, 1<<4 | 15, argp_v0r0},
	// cmpeqpd
	{[4]byte{0x0F, 0xC2, 0x00}, flags.PREF_66 | flags.IMM_OP, feats.SSE2, 0<<11 | 104, 3<<4 | 15, argp_yowo},
	// cmpeqps
	{[4]byte{0x0F, 0xC2, 0x00}, flags.IMM_OP, feats.SSE, 0<<11 | 105, 3<<4 | 15, argp_yowo},
	// cmpeqsd
	{[4]byte{0x0F, 0xC2, 0x00}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 106, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x00}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 106, 3<<4 | 15, argp_yoyo},
	// cmpeqss
	{[4]byte{0x0F, 0xC2, 0x00}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 0<<11 | 107, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x00}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 1<<11 | 107, 3<<4 | 15, argp_yoyo},
	// cmplepd
	{[4]byte{0x0F, 0xC2, 0x02}, flags.IMM_OP | flags.PREF_66, feats.SSE2, 0<<11 | 108, 3<<4 | 15, argp_yowo},
	// cmpleps
	{[4]byte{0x0F, 0xC2, 0x02}, flags.IMM_OP, feats.SSE, 0<<11 | 109, 3<<4 | 15, argp_yowo},
	// cmplesd
	{[4]byte{0x0F, 0xC2, 0x02}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 110, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x02}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 110, 3<<4 | 15, argp_yoyo},
	// cmpless
	{[4]byte{0x0F, 0xC2, 0x02}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 0<<11 | 111, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x02}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 1<<11 | 111, 3<<4 | 15, argp_yoyo},
	// cmpltpd
	{[4]byte{0x0F, 0xC2, 0x01}, flags.IMM_OP | flags.PREF_66, feats.SSE2, 0<<11 | 112, 3<<4 | 15, argp_yowo},
	// cmpltps
	{[4]byte{0x0F, 0xC2, 0x01}, flags.IMM_OP, feats.SSE, 0<<11 | 113, 3<<4 | 15, argp_yowo},
	// cmpltsd
	{[4]byte{0x0F, 0xC2, 0x01}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 114, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x01}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 114, 3<<4 | 15, argp_yoyo},
	// cmpltss
	{[4]byte{0x0F, 0xC2, 0x01}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 0<<11 | 115, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x01}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 1<<11 | 115, 3<<4 | 15, argp_yoyo},
	// cmpneqpd
	{[4]byte{0x0F, 0xC2, 0x04}, flags.PREF_66 | flags.IMM_OP, feats.SSE2, 0<<11 | 116, 3<<4 | 15, argp_yowo},
	// cmpneqps
	{[4]byte{0x0F, 0xC2, 0x04}, flags.IMM_OP, feats.SSE, 0<<11 | 117, 3<<4 | 15, argp_yowo},
	// cmpneqsd
	{[4]byte{0x0F, 0xC2, 0x04}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 118, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x04}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 118, 3<<4 | 15, argp_yoyo},
	// cmpneqss
	{[4]byte{0x0F, 0xC2, 0x04}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 0<<11 | 119, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x04}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 1<<11 | 119, 3<<4 | 15, argp_yoyo},
	// cmpnlepd
	{[4]byte{0x0F, 0xC2, 0x06}, flags.IMM_OP | flags.PREF_66, feats.SSE2, 0<<11 | 120, 3<<4 | 15, argp_yowo},
	// cmpnleps
	{[4]byte{0x0F, 0xC2, 0x06}, flags.IMM_OP, feats.SSE, 0<<11 | 121, 3<<4 | 15, argp_yowo},
	// cmpnlesd
	{[4]byte{0x0F, 0xC2, 0x06}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 122, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x06}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 122, 3<<4 | 15, argp_yoyo},
	// cmpnless
	{[4]byte{0x0F, 0xC2, 0x06}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 0<<11 | 123, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x06}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 1<<11 | 123, 3<<4 | 15, argp_yoyo},
	// cmpnltpd
	{[4]byte{0x0F, 0xC2, 0x05}, flags.PREF_66 | flags.IMM_OP, feats.SSE2, 0<<11 | 124, 3<<4 | 15, argp_yowo},
	// cmpnltps
	{[4]byte{0x0F, 0xC2, 0x05}, flags.IMM_OP, feats.SSE, 0<<11 | 125, 3<<4 | 15, argp_yowo},
	// cmpnltsd
	{[4]byte{0x0F, 0xC2, 0x05}, flags.IMM_OP | flags.PREF_F2, feats.SSE2, 0<<11 | 126, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x05}, flags.IMM_OP | flags.PREF_F2, feats.SSE2, 1<<11 | 126, 3<<4 | 15, argp_yoyo},
	// cmpnltss
	{[4]byte{0x0F, 0xC2, 0x05}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 0<<11 | 127, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x05}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 1<<11 | 127, 3<<4 | 15, argp_yoyo},
	// cmpordpd
	{[4]byte{0x0F, 0xC2, 0x07}, flags.IMM_OP | flags.PREF_66, feats.SSE2, 0<<11 | 128, 3<<4 | 15, argp_yowo},
	// cmpordps
	{[4]byte{0x0F, 0xC2, 0x07}, flags.IMM_OP, feats.SSE, 0<<11 | 129, 3<<4 | 15, argp_yowo},
	// cmpordsd
	{[4]byte{0x0F, 0xC2, 0x07}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 130, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x07}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 130, 3<<4 | 15, argp_yoyo},
	// cmpordss
	{[4]byte{0x0F, 0xC2, 0x07}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 0<<11 | 131, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x07}, flags.IMM_OP | flags.PREF_F3, feats.SSE, 1<<11 | 131, 3<<4 | 15, argp_yoyo},
	// cmppd
	{[4]byte{0x0F, 0xC2}, flags.PREF_66, feats.SSE2, 0<<11 | 132, 2<<4 | 15, argp_yowoib},
	// cmpps
	{[4]byte{0x0F, 0xC2}, 0, feats.SSE, 0<<11 | 133, 2<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0xC2}, 0, feats.SSE, 1<<11 | 133, 2<<4 | 15, argp_yoyoib},
	// cmpsb
	{[4]byte{0xA6}, flags.REPE, 0, 0<<11 | 134, 1<<4 | 15, argp_},
	// cmpsd
	{[4]byte{0xA7}, flags.REPE, 0, 0<<11 | 135, 1<<4 | 15, argp_},
	{[4]byte{0x0F, 0xC2}, flags.PREF_F2, feats.SSE2, 1<<11 | 135, 2<<4 | 15, argp_yowoib},
	// cmpsq
	{[4]byte{0xA7}, flags.REPE | flags.WITH_REXW, 0, 0<<11 | 136, 1<<4 | 15, argp_},
	// cmpss
	{[4]byte{0x0F, 0xC2}, flags.PREF_F3, feats.SSE, 0<<11 | 137, 2<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0xC2}, flags.PREF_F3, feats.SSE, 1<<11 | 137, 2<<4 | 15, argp_yoyoib},
	// cmpsw
	{[4]byte{0xA7}, flags.REPE | flags.WORD_SIZE, 0, 0<<11 | 138, 1<<4 | 15, argp_},
	// cmpunordpd
	{[4]byte{0x0F, 0xC2, 0x03}, flags.PREF_66 | flags.IMM_OP, feats.SSE2, 0<<11 | 139, 3<<4 | 15, argp_yowo},
	// cmpunordps
	{[4]byte{0x0F, 0xC2, 0x03}, flags.IMM_OP, feats.SSE, 0<<11 | 140, 3<<4 | 15, argp_yowo},
	// cmpunordsd
	{[4]byte{0x0F, 0xC2, 0x03}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 0<<11 | 141, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xC2, 0x03}, flags.PREF_F2 | flags.IMM_OP, feats.SSE2, 1<<11 | 141, 3<<4 | 15, argp_yoyo},
	// cmpunordss
	{[4]byte{0x0F, 0xC2, 0x03}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 0<<11 | 142, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0xC2, 0x03}, flags.PREF_F3 | flags.IMM_OP, feats.SSE, 1<<11 | 142, 3<<4 | 15, argp_yoyo},
	// cmpxchg
	{[4]byte{0x0F, 0xB0}, flags.LOCK | flags.ENC_MR, 0, 0<<11 | 143, 2<<4 | 15, argp_mbrb},
	{[4]byte{0x0F, 0xB0}, flags.ENC_MR, 0, 1<<11 | 143, 2<<4 | 15, argp_rbrb},
	{[4]byte{0x0F, 0xB1}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 2<<11 | 143, 2<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0xB1}, flags.AUTO_SIZE | flags.ENC_MR, 0, 3<<11 | 143, 2<<4 | 15, argp_r0r0},
	// cmpxchg16b
	{[4]byte{0x0F, 0xC7}, flags.LOCK | flags.WITH_REXW, 0, 0<<11 | 144, 2<<4 | 1, argp_mo},
	// cmpxchg8b
	{[4]byte{0x0F, 0xC7}, flags.LOCK, 0, 0<<11 | 145, 2<<4 | 1, argp_mq},
	// comisd
	{[4]byte{0x0F, 0x2F}, flags.PREF_66, feats.SSE2, 0<<11 | 146, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x2F}, flags.PREF_66, feats.SSE2, 1<<11 | 146, 2<<4 | 15, argp_yoyo},
	// comiss
	{[4]byte{0x0F, 0x2F}, 0, feats.SSE, 0<<11 | 147, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x2F}, 0, feats.SSE, 1<<11 | 147, 2<<4 | 15, argp_yoyo},
	// cpu_read
	{[4]byte{0x0F, 0x3D}, 0, feats.CYRIX, 0<<11 | 148, 2<<4 | 15, argp_},
	// cpu_write
	{[4]byte{0x0F, 0x3C}, 0, feats.CYRIX, 0<<11 | 149, 2<<4 | 15, argp_},
	// cpuid
	{[4]byte{0x0F, 0xA2}, 0, 0, 0<<11 | 150, 2<<4 | 15, argp_},
	// cqo
	{[4]byte{0x99}, flags.WITH_REXW, 0, 0<<11 | 151, 1<<4 | 15, argp_},
	// crc32
	{[4]byte{0x0F, 0x38, 0xF0}, flags.AUTO_REXW | flags.PREF_F2 | flags.EXACT_SIZE, 0, 0<<11 | 152, 3<<4 | 15, argp_r0vb},
	{[4]byte{0x0F, 0x38, 0xF1}, flags.WORD_SIZE | flags.PREF_F2 | flags.EXACT_SIZE, 0, 1<<11 | 152, 3<<4 | 15, argp_rdvw},
	{[4]byte{0x0F, 0x38, 0xF1}, flags.AUTO_REXW | flags.PREF_F2 | flags.EXACT_SIZE, 0, 2<<11 | 152, 3<<4 | 15, argp_r0v0},
	// cvtdq2pd
	{[4]byte{0x0F, 0xE6}, flags.PREF_F3, feats.SSE2, 0<<11 | 153, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0xE6}, flags.PREF_F3, feats.SSE2, 1<<11 | 153, 2<<4 | 15, argp_yoyo},
	// cvtdq2ps
	{[4]byte{0x0F, 0x5B}, 0, feats.SSE2, 0<<11 | 154, 2<<4 | 15, argp_yowo},
	// cvtpd2dq
	{[4]byte{0x0F, 0xE6}, flags.PREF_F2, feats.SSE2, 0<<11 | 155, 2<<4 | 15, argp_yowo},
	// cvtpd2pi
	{[4]byte{0x0F, 0x2D}, flags.PREF_66, feats.SSE2, 0<<11 | 156, 2<<4 | 15, argp_xqwo},
	// cvtpd2ps
	{[4]byte{0x0F, 0x5A}, flags.PREF_66, feats.SSE2, 0<<11 | 157, 2<<4 | 15, argp_yowo},
	// cvtpi2pd
	{[4]byte{0x0F, 0x2A}, flags.PREF_66, feats.SSE2, 0<<11 | 158, 2<<4 | 15, argp_youq},
	// cvtpi2ps
	{[4]byte{0x0F, 0x2A}, 0, feats.MMX | feats.SSE, 0<<11 | 159, 2<<4 | 15, argp_youq},
	// cvtps2dq
	{[4]byte{0x0F, 0x5B}, flags.PREF_66, feats.SSE2, 0<<11 | 160, 2<<4 | 15, argp_yowo},
	// cvtps2pd
	{[4]byte{0x0F, 0x5A}, 0, feats.SSE2, 0<<11 | 161, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5A}, 0, feats.SSE2, 1<<11 | 161, 2<<4 | 15, argp_yoyo},
	// cvtps2pi
	{[4]byte{0x0F, 0x2D}, 0, feats.SSE | feats.MMX, 0<<11 | 162, 2<<4 | 15, argp_xqmq},
	{[4]byte{0x0F, 0x2D}, 0, feats.SSE | feats.MMX, 1<<11 | 162, 2<<4 | 15, argp_xqyo},
	// cvtsd2si
	{[4]byte{0x0F, 0x2D}, flags.PREF_F2, feats.SSE2, 0<<11 | 163, 2<<4 | 15, argp_rdmq},
	{[4]byte{0x0F, 0x2D}, flags.PREF_F2, feats.SSE2, 1<<11 | 163, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x2D}, flags.WITH_REXW | flags.PREF_F2, feats.SSE2, 2<<11 | 163, 2<<4 | 15, argp_rqmq},
	{[4]byte{0x0F, 0x2D}, flags.WITH_REXW | flags.PREF_F2, feats.SSE2, 3<<11 | 163, 2<<4 | 15, argp_rqyo},
	// cvtsd2ss
	{[4]byte{0x0F, 0x5A}, flags.PREF_F2, feats.SSE2, 0<<11 | 164, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5A}, flags.PREF_F2, feats.SSE2, 1<<11 | 164, 2<<4 | 15, argp_yoyo},
	// cvtsi2sd
	{[4]byte{0x0F, 0x2A}, flags.PREF_F2, feats.SSE2, 0<<11 | 165, 2<<4 | 15, argp_yovd},
	{[4]byte{0x0F, 0x2A}, flags.WITH_REXW | flags.PREF_F2, feats.SSE2, 1<<11 | 165, 2<<4 | 15, argp_yovq},
	// cvtsi2ss
	{[4]byte{0x0F, 0x2A}, flags.PREF_F3, feats.SSE, 0<<11 | 166, 2<<4 | 15, argp_yovd},
	{[4]byte{0x0F, 0x2A}, flags.WITH_REXW | flags.PREF_F3, feats.SSE, 1<<11 | 166, 2<<4 | 15, argp_yovq},
	// cvtss2sd
	{[4]byte{0x0F, 0x5A}, flags.PREF_F3, feats.SSE2, 0<<11 | 167, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x5A}, flags.PREF_F3, feats.SSE2, 1<<11 | 167, 2<<4 | 15, argp_yoyo},
	// cvtss2si
	{[4]byte{0x0F, 0x2D}, flags.PREF_F3, feats.SSE, 0<<11 | 168, 2<<4 | 15, argp_rdmd},
	{[4]byte{0x0F, 0x2D}, flags.PREF_F3, feats.SSE, 1<<11 | 168, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x2D}, flags.WITH_REXW | flags.PREF_F3, feats.SSE, 2<<11 | 168, 2<<4 | 15, argp_rqmd},
	{[4]byte{0x0F, 0x2D}, flags.WITH_REXW | flags.PREF_F3, feats.SSE, 3<<11 | 168, 2<<4 | 15, argp_rqyo},
	// cvttpd2dq
	{[4]byte{0x0F, 0xE6}, flags.PREF_66, feats.SSE2, 0<<11 | 169, 2<<4 | 15, argp_yowo},
	// cvttpd2pi
	{[4]byte{0x0F, 0x2C}, flags.PREF_66, feats.SSE2, 0<<11 | 170, 2<<4 | 15, argp_xqwo},
	// cvttps2dq
	{[4]byte{0x0F, 0x5B}, flags.PREF_F3, feats.SSE2, 0<<11 | 171, 2<<4 | 15, argp_yowo},
	// cvttps2pi
	{[4]byte{0x0F, 0x2C}, 0, feats.SSE | feats.MMX, 0<<11 | 172, 2<<4 | 15, argp_xqmq},
	{[4]byte{0x0F, 0x2C}, 0, feats.SSE | feats.MMX, 1<<11 | 172, 2<<4 | 15, argp_xqyo},
	// cvttsd2si
	{[4]byte{0x0F, 0x2C}, flags.PREF_F2, feats.SSE2, 0<<11 | 173, 2<<4 | 15, argp_rdmq},
	{[4]byte{0x0F, 0x2C}, flags.PREF_F2, feats.SSE2, 1<<11 | 173, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x2C}, flags.WITH_REXW | flags.PREF_F2, feats.SSE2, 2<<11 | 173, 2<<4 | 15, argp_rqmq},
	{[4]byte{0x0F, 0x2C}, flags.WITH_REXW | flags.PREF_F2, feats.SSE2, 3<<11 | 173, 2<<4 | 15, argp_rqyo},
	// cvttss2si
	{[4]byte{0x0F, 0x2C}, flags.PREF_F3, feats.SSE, 0<<11 | 174, 2<<4 | 15, argp_rdmd},
	{[4]byte{0x0F, 0x2C}, flags.PREF_F3, feats.SSE, 1<<11 | 174, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x2C}, flags.WITH_REXW | flags.PREF_F3, feats.SSE, 2<<11 | 174, 2<<4 | 15, argp_rqmd},
	{[4]byte{0x0F, 0x2C}, flags.WITH_REXW | flags.PREF_F3, feats.SSE, 3<<11 | 174, 2<<4 | 15, argp_rqyo},
	// cwd
	{[4]byte{0x99}, flags.WORD_SIZE, 0, 0<<11 | 175, 1<<4 | 15, argp_},
	// cwde
	{[4]byte{0x98}, 0, 0, 0<<11 | 176, 1<<4 | 15, argp_},
	// daa
	{[4]byte{0x27}, flags.X86_ONLY, 0, 0<<11 | 177, 1<<4 | 15, argp_},
	// das
	{[4]byte{0x2F}, flags.X86_ONLY, 0, 0<<11 | 178, 1<<4 | 15, argp_},
	// dec
	{[4]byte{0xFE}, flags.LOCK, 0, 0<<11 | 179, 1<<4 | 1, argp_mb},
	{[4]byte{0xFE}, 0, 0, 1<<11 | 179, 1<<4 | 1, argp_rb},
	{[4]byte{0xFF}, flags.AUTO_SIZE | flags.LOCK, 0, 2<<11 | 179, 1<<4 | 1, argp_m0},
	{[4]byte{0x48}, flags.X86_ONLY | flags.SHORT_ARG, 0, 3<<11 | 179, 1<<4 | 0, argp_r0},
	{[4]byte{0xFF}, flags.AUTO_SIZE, 0, 4<<11 | 179, 1<<4 | 1, argp_r0},
	// div
	{[4]byte{0xF6}, 0, 0, 0<<11 | 180, 1<<4 | 6, argp_vb},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 1<<11 | 180, 1<<4 | 6, argp_v0},
	// divpd
	{[4]byte{0x0F, 0x5E}, flags.PREF_66, feats.SSE2, 0<<11 | 181, 2<<4 | 15, argp_yowo},
	// divps
	{[4]byte{0x0F, 0x5E}, 0, feats.SSE, 0<<11 | 182, 2<<4 | 15, argp_yowo},
	// divsd
	{[4]byte{0x0F, 0x5E}, flags.PREF_F2, feats.SSE2, 0<<11 | 183, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5E}, flags.PREF_F2, feats.SSE2, 1<<11 | 183, 2<<4 | 15, argp_yoyo},
	// divss
	{[4]byte{0x0F, 0x5E}, flags.PREF_F3, feats.SSE, 0<<11 | 184, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x5E}, flags.PREF_F3, feats.SSE, 1<<11 | 184, 2<<4 | 15, argp_yoyo},
	// dmint
	{[4]byte{0x0F, 0x39}, 0, feats.CYRIX, 0<<11 | 185, 2<<4 | 15, argp_},
	// dppd
	{[4]byte{0x0F, 0x3A, 0x41}, flags.PREF_66, feats.SSE41, 0<<11 | 186, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x41}, flags.PREF_66, feats.SSE41, 1<<11 | 186, 3<<4 | 15, argp_yoyoib},
	// dpps
	{[4]byte{0x0F, 0x3A, 0x40}, flags.PREF_66, feats.SSE41, 0<<11 | 187, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x40}, flags.PREF_66, feats.SSE41, 1<<11 | 187, 3<<4 | 15, argp_yoyoib},
	// emms
	{[4]byte{0x0F, 0x77}, 0, feats.MMX, 0<<11 | 188, 2<<4 | 15, argp_},
	// enter
	{[4]byte{0xC8}, 0, 0, 0<<11 | 189, 1<<4 | 15, argp_iwib},
	// extractps
	{[4]byte{0x0F, 0x3A, 0x17}, flags.WITH_REXW | flags.ENC_MR | flags.PREF_66, feats.SSE41, 0<<11 | 190, 3<<4 | 15, argp_rqyoib},
	{[4]byte{0x0F, 0x3A, 0x17}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 1<<11 | 190, 3<<4 | 15, argp_vdyoib},
	// extrq
	{[4]byte{0x0F, 0x78}, flags.PREF_66, feats.SSE4A | feats.AMD, 0<<11 | 191, 2<<4 | 0, argp_yoibib},
	{[4]byte{0x0F, 0x79}, flags.PREF_66, feats.SSE4A | feats.AMD, 1<<11 | 191, 2<<4 | 15, argp_yoyo},
	// f2xm1
	{[4]byte{0xD9, 0xF0}, 0, feats.FPU, 0<<11 | 192, 2<<4 | 15, argp_},
	// fabs
	{[4]byte{0xD9, 0xE1}, 0, feats.FPU, 0<<11 | 193, 2<<4 | 15, argp_},
	// fadd
	{[4]byte{0xDE, 0xC1}, 0, feats.FPU, 0<<11 | 194, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 194, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xC0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 194, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xC0}, flags.SHORT_ARG, feats.FPU, 3<<11 | 194, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xC0}, flags.SHORT_ARG, feats.FPU, 4<<11 | 194, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 194, 1<<4 | 0, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 194, 1<<4 | 0, argp_mq},
	// faddp
	{[4]byte{0xDE, 0xC1}, 0, feats.FPU, 0<<11 | 195, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 195, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xC0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 195, 2<<4 | 15, argp_fpXp},
	// fbld
	{[4]byte{0xDF}, 0, feats.FPU, 0<<11 | 196, 1<<4 | 4, argp_m1},
	// fbstp
	{[4]byte{0xDF}, 0, feats.FPU, 0<<11 | 197, 1<<4 | 6, argp_m1},
	// fchs
	{[4]byte{0xD9, 0xE0}, 0, feats.FPU, 0<<11 | 198, 2<<4 | 15, argp_},
	// fclex
	{[4]byte{0x9B, 0xDB, 0xE2}, 0, feats.FPU, 0<<11 | 199, 3<<4 | 15, argp_},
	// fcmovb
	{[4]byte{0xDA, 0xC1}, 0, feats.FPU, 0<<11 | 200, 2<<4 | 15, argp_},
	{[4]byte{0xDA, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 200, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDA, 0xC0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 200, 2<<4 | 15, argp_fp},
	// fcmovbe
	{[4]byte{0xDA, 0xD1}, 0, feats.FPU, 0<<11 | 201, 2<<4 | 15, argp_},
	{[4]byte{0xDA, 0xD0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 201, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDA, 0xD0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 201, 2<<4 | 15, argp_fp},
	// fcmove
	{[4]byte{0xDA, 0xC9}, 0, feats.FPU, 0<<11 | 202, 2<<4 | 15, argp_},
	{[4]byte{0xDA, 0xC8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 202, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDA, 0xC8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 202, 2<<4 | 15, argp_fp},
	// fcmovnb
	{[4]byte{0xDB, 0xC1}, 0, feats.FPU, 0<<11 | 203, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 203, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xC0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 203, 2<<4 | 15, argp_fp},
	// fcmovnbe
	{[4]byte{0xDB, 0xD1}, 0, feats.FPU, 0<<11 | 204, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xD0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 204, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xD0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 204, 2<<4 | 15, argp_fp},
	// fcmovne
	{[4]byte{0xDB, 0xC9}, 0, feats.FPU, 0<<11 | 205, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xC8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 205, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xC8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 205, 2<<4 | 15, argp_fp},
	// fcmovnu
	{[4]byte{0xDB, 0xD9}, 0, feats.FPU, 0<<11 | 206, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xD8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 206, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xD8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 206, 2<<4 | 15, argp_fp},
	// fcmovu
	{[4]byte{0xDA, 0xD9}, 0, feats.FPU, 0<<11 | 207, 2<<4 | 15, argp_},
	{[4]byte{0xDA, 0xD8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 207, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDA, 0xD8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 207, 2<<4 | 15, argp_fp},
	// fcom
	{[4]byte{0xD8, 0xD1}, 0, feats.FPU, 0<<11 | 208, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xD0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 208, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xD0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 208, 2<<4 | 15, argp_fp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 3<<11 | 208, 1<<4 | 2, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 4<<11 | 208, 1<<4 | 2, argp_mq},
	// fcomi
	{[4]byte{0xDB, 0xF1}, 0, feats.FPU, 0<<11 | 209, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xF0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 209, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xF0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 209, 2<<4 | 15, argp_fp},
	// fcomip
	{[4]byte{0xDF, 0xF1}, 0, feats.FPU, 0<<11 | 210, 2<<4 | 15, argp_},
	{[4]byte{0xDF, 0xF0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 210, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDF, 0xF0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 210, 2<<4 | 15, argp_fp},
	// fcomp
	{[4]byte{0xD8, 0xD9}, 0, feats.FPU, 0<<11 | 211, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xD8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 211, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xD8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 211, 2<<4 | 15, argp_fp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 3<<11 | 211, 1<<4 | 3, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 4<<11 | 211, 1<<4 | 3, argp_mq},
	// fcompp
	{[4]byte{0xDE, 0xD9}, 0, feats.FPU, 0<<11 | 212, 2<<4 | 15, argp_},
	// fcos
	{[4]byte{0xD9, 0xFF}, 0, feats.FPU, 0<<11 | 213, 2<<4 | 15, argp_},
	// fdecstp
	{[4]byte{0xD9, 0xF6}, 0, feats.FPU, 0<<11 | 214, 2<<4 | 15, argp_},
	// fdisi
	{[4]byte{0x9B, 0xDB, 0xE1}, 0, feats.FPU, 0<<11 | 215, 3<<4 | 15, argp_},
	// fdiv
	{[4]byte{0xDE, 0xF9}, 0, feats.FPU, 0<<11 | 216, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xF0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 216, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xF0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 216, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xF8}, flags.SHORT_ARG, feats.FPU, 3<<11 | 216, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xF8}, flags.SHORT_ARG, feats.FPU, 4<<11 | 216, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 216, 1<<4 | 6, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 216, 1<<4 | 6, argp_mq},
	// fdivp
	{[4]byte{0xDE, 0xF9}, 0, feats.FPU, 0<<11 | 217, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xF8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 217, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xF8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 217, 2<<4 | 15, argp_fpXp},
	// fdivr
	{[4]byte{0xDE, 0xF1}, 0, feats.FPU, 0<<11 | 218, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xF8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 218, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xF8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 218, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xF0}, flags.SHORT_ARG, feats.FPU, 3<<11 | 218, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xF0}, flags.SHORT_ARG, feats.FPU, 4<<11 | 218, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 218, 1<<4 | 7, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 218, 1<<4 | 7, argp_mq},
	// fdivrp
	{[4]byte{0xDE, 0xF1}, 0, feats.FPU, 0<<11 | 219, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xF0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 219, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xF0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 219, 2<<4 | 15, argp_fpXp},
	// femms
	{[4]byte{0x0F, 0x0E}, 0, feats.TDNOW, 0<<11 | 220, 2<<4 | 15, argp_},
	// feni
	{[4]byte{0x9B, 0xDB, 0xE0}, 0, feats.FPU, 0<<11 | 221, 3<<4 | 15, argp_},
	// ffree
	{[4]byte{0xDD, 0xC1}, 0, feats.FPU, 0<<11 | 222, 2<<4 | 15, argp_},
	{[4]byte{0xDD, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 222, 2<<4 | 15, argp_fp},
	// fiadd
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 223, 1<<4 | 0, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 223, 1<<4 | 0, argp_mw},
	// ficom
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 224, 1<<4 | 2, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 224, 1<<4 | 2, argp_mw},
	// ficomp
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 225, 1<<4 | 3, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 225, 1<<4 | 3, argp_mw},
	// fidiv
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 226, 1<<4 | 6, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 226, 1<<4 | 6, argp_mw},
	// fidivr
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 227, 1<<4 | 7, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 227, 1<<4 | 7, argp_mw},
	// fild
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 228, 1<<4 | 0, argp_md},
	{[4]byte{0xDF}, flags.EXACT_SIZE, feats.FPU, 1<<11 | 228, 1<<4 | 5, argp_mq},
	{[4]byte{0xDF}, 0, feats.FPU, 2<<11 | 228, 1<<4 | 0, argp_mw},
	// fimul
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 229, 1<<4 | 1, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 229, 1<<4 | 1, argp_mw},
	// fincstp
	{[4]byte{0xD9, 0xF7}, 0, feats.FPU, 0<<11 | 230, 2<<4 | 15, argp_},
	// finit
	{[4]byte{0x9B, 0xDB, 0xE3}, 0, feats.FPU, 0<<11 | 231, 3<<4 | 15, argp_},
	// fist
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 232, 1<<4 | 2, argp_md},
	{[4]byte{0xDF}, 0, feats.FPU, 1<<11 | 232, 1<<4 | 2, argp_mw},
	// fistp
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 233, 1<<4 | 3, argp_md},
	{[4]byte{0xDF}, flags.EXACT_SIZE, feats.FPU, 1<<11 | 233, 1<<4 | 7, argp_mq},
	{[4]byte{0xDF}, 0, feats.FPU, 2<<11 | 233, 1<<4 | 3, argp_mw},
	// fisttp
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 234, 1<<4 | 1, argp_md},
	{[4]byte{0xDD}, flags.EXACT_SIZE, feats.FPU, 1<<11 | 234, 1<<4 | 1, argp_mq},
	{[4]byte{0xDF}, 0, feats.FPU, 2<<11 | 234, 1<<4 | 1, argp_mw},
	// fisub
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 235, 1<<4 | 4, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 235, 1<<4 | 4, argp_mw},
	// fisubr
	{[4]byte{0xDA}, flags.EXACT_SIZE, feats.FPU, 0<<11 | 236, 1<<4 | 5, argp_md},
	{[4]byte{0xDE}, 0, feats.FPU, 1<<11 | 236, 1<<4 | 5, argp_mw},
	// fld
	{[4]byte{0xD9, 0xC1}, 0, feats.FPU, 0<<11 | 237, 2<<4 | 15, argp_},
	{[4]byte{0xD9, 0xC0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 237, 2<<4 | 15, argp_fp},
	{[4]byte{0xD9}, flags.EXACT_SIZE, feats.FPU, 2<<11 | 237, 1<<4 | 0, argp_md},
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 3<<11 | 237, 1<<4 | 5, argp_mp},
	{[4]byte{0xDD}, flags.EXACT_SIZE, feats.FPU, 4<<11 | 237, 1<<4 | 0, argp_mq},
	// fld1
	{[4]byte{0xD9, 0xE8}, 0, feats.FPU, 0<<11 | 238, 2<<4 | 15, argp_},
	// fldcw
	{[4]byte{0xD9}, 0, feats.FPU, 0<<11 | 239, 1<<4 | 5, argp_mw},
	// fldenv
	{[4]byte{0xD9}, 0, feats.FPU, 0<<11 | 240, 1<<4 | 4, argp_m1},
	// fldl2e
	{[4]byte{0xD9, 0xEA}, 0, feats.FPU, 0<<11 | 241, 2<<4 | 15, argp_},
	// fldl2t
	{[4]byte{0xD9, 0xE9}, 0, feats.FPU, 0<<11 | 242, 2<<4 | 15, argp_},
	// fldlg2
	{[4]byte{0xD9, 0xEC}, 0, feats.FPU, 0<<11 | 243, 2<<4 | 15, argp_},
	// fldln2
	{[4]byte{0xD9, 0xED}, 0, feats.FPU, 0<<11 | 244, 2<<4 | 15, argp_},
	// fldpi
	{[4]byte{0xD9, 0xEB}, 0, feats.FPU, 0<<11 | 245, 2<<4 | 15, argp_},
	// fldz
	{[4]byte{0xD9, 0xEE}, 0, feats.FPU, 0<<11 | 246, 2<<4 | 15, argp_},
	// fmul
	{[4]byte{0xDE, 0xC9}, 0, feats.FPU, 0<<11 | 247, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xC8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 247, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xC8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 247, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xC8}, flags.SHORT_ARG, feats.FPU, 3<<11 | 247, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xC8}, flags.SHORT_ARG, feats.FPU, 4<<11 | 247, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 247, 1<<4 | 1, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 247, 1<<4 | 1, argp_mq},
	// fmulp
	{[4]byte{0xDE, 0xC9}, 0, feats.FPU, 0<<11 | 248, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xC8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 248, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xC8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 248, 2<<4 | 15, argp_fpXp},
	// fnclex
	{[4]byte{0xDB, 0xE2}, 0, feats.FPU, 0<<11 | 249, 2<<4 | 15, argp_},
	// fndisi
	{[4]byte{0xDB, 0xE1}, 0, feats.FPU, 0<<11 | 250, 2<<4 | 15, argp_},
	// fneni
	{[4]byte{0xDB, 0xE0}, 0, feats.FPU, 0<<11 | 251, 2<<4 | 15, argp_},
	// fninit
	{[4]byte{0xDB, 0xE3}, 0, feats.FPU, 0<<11 | 252, 2<<4 | 15, argp_},
	// fnop
	{[4]byte{0xD9, 0xD0}, 0, feats.FPU, 0<<11 | 253, 2<<4 | 15, argp_},
	// fnsave
	{[4]byte{0xDD}, 0, feats.FPU, 0<<11 | 254, 1<<4 | 6, argp_m1},
	// fnstcw
	{[4]byte{0xD9}, 0, feats.FPU, 0<<11 | 255, 1<<4 | 7, argp_mw},
	// fnstenv
	{[4]byte{0xD9}, 0, feats.FPU, 0<<11 | 256, 1<<4 | 6, argp_m1},
	// fnstsw
	{[4]byte{0xDF, 0xE0}, 0, feats.FPU, 0<<11 | 257, 2<<4 | 15, argp_Aw},
	{[4]byte{0xDD}, 0, feats.FPU, 1<<11 | 257, 1<<4 | 7, argp_mw},
	// fpatan
	{[4]byte{0xD9, 0xF3}, 0, feats.FPU, 0<<11 | 258, 2<<4 | 15, argp_},
	// fprem
	{[4]byte{0xD9, 0xF8}, 0, feats.FPU, 0<<11 | 259, 2<<4 | 15, argp_},
	// fprem1
	{[4]byte{0xD9, 0xF5}, 0, feats.FPU, 0<<11 | 260, 2<<4 | 15, argp_},
	// fptan
	{[4]byte{0xD9, 0xF2}, 0, feats.FPU, 0<<11 | 261, 2<<4 | 15, argp_},
	// frndint
	{[4]byte{0xD9, 0xFC}, 0, feats.FPU, 0<<11 | 262, 2<<4 | 15, argp_},
	// frstor
	{[4]byte{0xDD}, 0, feats.FPU, 0<<11 | 263, 1<<4 | 4, argp_m1},
	// fsave
	{[4]byte{0x9B, 0xDD}, 0, feats.FPU, 0<<11 | 264, 2<<4 | 6, argp_m1},
	// fscale
	{[4]byte{0xD9, 0xFD}, 0, feats.FPU, 0<<11 | 265, 2<<4 | 15, argp_},
	// fsetpm
	{[4]byte{0xDB, 0xE4}, 0, feats.FPU, 0<<11 | 266, 2<<4 | 15, argp_},
	// fsin
	{[4]byte{0xD9, 0xFE}, 0, feats.FPU, 0<<11 | 267, 2<<4 | 15, argp_},
	// fsincos
	{[4]byte{0xD9, 0xFB}, 0, feats.FPU, 0<<11 | 268, 2<<4 | 15, argp_},
	// fsqrt
	{[4]byte{0xD9, 0xFA}, 0, feats.FPU, 0<<11 | 269, 2<<4 | 15, argp_},
	// fst
	{[4]byte{0xDD, 0xD1}, 0, feats.FPU, 0<<11 | 270, 2<<4 | 15, argp_},
	{[4]byte{0xDD, 0xD0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 270, 2<<4 | 15, argp_fp},
	{[4]byte{0xD9}, flags.EXACT_SIZE, feats.FPU, 2<<11 | 270, 1<<4 | 2, argp_md},
	{[4]byte{0xDD}, flags.EXACT_SIZE, feats.FPU, 3<<11 | 270, 1<<4 | 2, argp_mq},
	// fstcw
	{[4]byte{0x9B, 0xD9}, 0, feats.FPU, 0<<11 | 271, 2<<4 | 7, argp_mw},
	// fstenv
	{[4]byte{0x9B, 0xD9}, 0, feats.FPU, 0<<11 | 272, 2<<4 | 6, argp_m1},
	// fstp
	{[4]byte{0xDD, 0xD9}, 0, feats.FPU, 0<<11 | 273, 2<<4 | 15, argp_},
	{[4]byte{0xDD, 0xD8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 273, 2<<4 | 15, argp_fp},
	{[4]byte{0xD9}, flags.EXACT_SIZE, feats.FPU, 2<<11 | 273, 1<<4 | 3, argp_md},
	{[4]byte{0xDB}, flags.EXACT_SIZE, feats.FPU, 3<<11 | 273, 1<<4 | 7, argp_mp},
	{[4]byte{0xDD}, flags.EXACT_SIZE, feats.FPU, 4<<11 | 273, 1<<4 | 3, argp_mq},
	// fstsw
	{[4]byte{0x9B, 0xDF, 0xE0}, 0, feats.FPU, 0<<11 | 274, 3<<4 | 15, argp_Aw},
	{[4]byte{0x9B, 0xDD}, 0, feats.FPU, 1<<11 | 274, 2<<4 | 7, argp_mw},
	// fsub
	{[4]byte{0xDE, 0xE9}, 0, feats.FPU, 0<<11 | 275, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xE0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 275, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xE0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 275, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xE8}, flags.SHORT_ARG, feats.FPU, 3<<11 | 275, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xE8}, flags.SHORT_ARG, feats.FPU, 4<<11 | 275, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 275, 1<<4 | 4, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 275, 1<<4 | 4, argp_mq},
	// fsubp
	{[4]byte{0xDE, 0xE9}, 0, feats.FPU, 0<<11 | 276, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xE8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 276, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xE8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 276, 2<<4 | 15, argp_fpXp},
	// fsubr
	{[4]byte{0xDE, 0xE1}, 0, feats.FPU, 0<<11 | 277, 2<<4 | 15, argp_},
	{[4]byte{0xD8, 0xE8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 277, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD8, 0xE8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 277, 2<<4 | 15, argp_fp},
	{[4]byte{0xDC, 0xE0}, flags.SHORT_ARG, feats.FPU, 3<<11 | 277, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xDC, 0xE0}, flags.SHORT_ARG, feats.FPU, 4<<11 | 277, 2<<4 | 15, argp_fpXp},
	{[4]byte{0xD8}, flags.EXACT_SIZE, feats.FPU, 5<<11 | 277, 1<<4 | 5, argp_md},
	{[4]byte{0xDC}, flags.EXACT_SIZE, feats.FPU, 6<<11 | 277, 1<<4 | 5, argp_mq},
	// fsubrp
	{[4]byte{0xDE, 0xE1}, 0, feats.FPU, 0<<11 | 278, 2<<4 | 15, argp_},
	{[4]byte{0xDE, 0xE0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 278, 2<<4 | 15, argp_fp},
	{[4]byte{0xDE, 0xE0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 278, 2<<4 | 15, argp_fpXp},
	// ftst
	{[4]byte{0xD9, 0xE4}, 0, feats.FPU, 0<<11 | 279, 2<<4 | 15, argp_},
	// fucom
	{[4]byte{0xDD, 0xE1}, 0, feats.FPU, 0<<11 | 280, 2<<4 | 15, argp_},
	{[4]byte{0xDD, 0xE0}, flags.SHORT_ARG, feats.FPU, 1<<11 | 280, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDD, 0xE0}, flags.SHORT_ARG, feats.FPU, 2<<11 | 280, 2<<4 | 15, argp_fp},
	// fucomi
	{[4]byte{0xDB, 0xE9}, 0, feats.FPU, 0<<11 | 281, 2<<4 | 15, argp_},
	{[4]byte{0xDB, 0xE8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 281, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDB, 0xE8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 281, 2<<4 | 15, argp_fp},
	// fucomip
	{[4]byte{0xDF, 0xE9}, 0, feats.FPU, 0<<11 | 282, 2<<4 | 15, argp_},
	{[4]byte{0xDF, 0xE8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 282, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDF, 0xE8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 282, 2<<4 | 15, argp_fp},
	// fucomp
	{[4]byte{0xDD, 0xE9}, 0, feats.FPU, 0<<11 | 283, 2<<4 | 15, argp_},
	{[4]byte{0xDD, 0xE8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 283, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xDD, 0xE8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 283, 2<<4 | 15, argp_fp},
	// fucompp
	{[4]byte{0xDA, 0xE9}, 0, feats.FPU, 0<<11 | 284, 2<<4 | 15, argp_},
	// fwait
	{[4]byte{0x9B}, 0, 0, 0<<11 | 285, 1<<4 | 15, argp_},
	// fxam
	{[4]byte{0xD9, 0xE5}, 0, feats.FPU, 0<<11 | 286, 2<<4 | 15, argp_},
	// fxch
	{[4]byte{0xD9, 0xC9}, 0, feats.FPU, 0<<11 | 287, 2<<4 | 15, argp_},
	{[4]byte{0xD9, 0xC8}, flags.SHORT_ARG, feats.FPU, 1<<11 | 287, 2<<4 | 15, argp_Xpfp},
	{[4]byte{0xD9, 0xC8}, flags.SHORT_ARG, feats.FPU, 2<<11 | 287, 2<<4 | 15, argp_fp},
	{[4]byte{0xD9, 0xC8}, flags.SHORT_ARG, feats.FPU, 3<<11 | 287, 2<<4 | 15, argp_fpXp},
	// fxrstor
	{[4]byte{0x0F, 0xAE}, 0, feats.SSE | feats.FPU, 0<<11 | 288, 2<<4 | 1, argp_m1},
	// fxrstor64
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW, feats.FPU | feats.SSE, 0<<11 | 289, 2<<4 | 1, argp_m1},
	// fxsave
	{[4]byte{0x0F, 0xAE}, 0, feats.FPU | feats.SSE, 0<<11 | 290, 2<<4 | 0, argp_m1},
	// fxsave64
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW, feats.SSE | feats.FPU, 0<<11 | 291, 2<<4 | 0, argp_m1},
	// fxtract
	{[4]byte{0xD9, 0xF4}, 0, feats.FPU, 0<<11 | 292, 2<<4 | 15, argp_},
	// fyl2x
	{[4]byte{0xD9, 0xF1}, 0, feats.FPU, 0<<11 | 293, 2<<4 | 15, argp_},
	// fyl2xp1
	{[4]byte{0xD9, 0xF9}, 0, feats.FPU, 0<<11 | 294, 2<<4 | 15, argp_},
	// getsec
	{[4]byte{0x0F, 0x37}, 0, 0, 0<<11 | 295, 2<<4 | 15, argp_},
	// haddpd
	{[4]byte{0x0F, 0x7C}, flags.PREF_66, feats.SSE3, 0<<11 | 296, 2<<4 | 15, argp_yowo},
	// haddps
	{[4]byte{0x0F, 0x7C}, flags.PREF_F2, feats.SSE3, 0<<11 | 297, 2<<4 | 15, argp_yowo},
	// hlt
	{[4]byte{0xF4}, 0, 0, 0<<11 | 298, 1<<4 | 15, argp_},
	// hsubpd
	{[4]byte{0x0F, 0x7D}, flags.PREF_66, feats.SSE3, 0<<11 | 299, 2<<4 | 15, argp_yowo},
	// hsubps
	{[4]byte{0x0F, 0x7D}, flags.PREF_F2, feats.SSE3, 0<<11 | 300, 2<<4 | 15, argp_yowo},
	// icebp
	{[4]byte{0xF1}, 0, 0, 0<<11 | 301, 1<<4 | 15, argp_},
	// idiv
	{[4]byte{0xF6}, 0, 0, 0<<11 | 302, 1<<4 | 7, argp_vb},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 1<<11 | 302, 1<<4 | 7, argp_v0},
	// imul
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 0<<11 | 303, 1<<4 | 5, argp_v0},
	{[4]byte{0xF6}, 0, 0, 1<<11 | 303, 1<<4 | 5, argp_vb},
	{[4]byte{0x0F, 0xAF}, flags.AUTO_SIZE, 0, 2<<11 | 303, 2<<4 | 15, argp_r0v0},
	{[4]byte{0x6B}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 3<<11 | 303, 1<<4 | 15, argp_r0v0ib},
	{[4]byte{0x69}, flags.AUTO_SIZE, 0, 4<<11 | 303, 1<<4 | 15, argp_r0v0i0},
	// in
	{[4]byte{0xE4}, 0, 0, 0<<11 | 304, 1<<4 | 15, argp_Abib},
	{[4]byte{0xE5}, flags.WORD_SIZE, 0, 1<<11 | 304, 1<<4 | 15, argp_Awib},
	{[4]byte{0xE5}, 0, 0, 2<<11 | 304, 1<<4 | 15, argp_Adib},
	{[4]byte{0xEC}, 0, 0, 3<<11 | 304, 1<<4 | 15, argp_AbCw},
	{[4]byte{0xED}, flags.WORD_SIZE, 0, 4<<11 | 304, 1<<4 | 15, argp_AwCw},
	{[4]byte{0xED}, 0, 0, 5<<11 | 304, 1<<4 | 15, argp_AdCw},
	// inc
	{[4]byte{0xFE}, flags.LOCK, 0, 0<<11 | 305, 1<<4 | 0, argp_mb},
	{[4]byte{0xFE}, 0, 0, 1<<11 | 305, 1<<4 | 0, argp_rb},
	{[4]byte{0xFF}, flags.AUTO_SIZE | flags.LOCK, 0, 2<<11 | 305, 1<<4 | 0, argp_m0},
	{[4]byte{0x40}, flags.X86_ONLY | flags.SHORT_ARG, 0, 3<<11 | 305, 1<<4 | 0, argp_r0},
	{[4]byte{0xFF}, flags.AUTO_SIZE, 0, 4<<11 | 305, 1<<4 | 0, argp_r0},
	// insb
	{[4]byte{0x6C}, flags.REP, 0, 0<<11 | 306, 1<<4 | 15, argp_},
	// insd
	{[4]byte{0x6D}, flags.REP, 0, 0<<11 | 307, 1<<4 | 15, argp_},
	// insertps
	{[4]byte{0x0F, 0x3A, 0x21}, flags.PREF_66, feats.SSE41, 0<<11 | 308, 3<<4 | 15, argp_yomdib},
	{[4]byte{0x0F, 0x3A, 0x21}, flags.PREF_66, feats.SSE41, 1<<11 | 308, 3<<4 | 15, argp_yoyoib},
	// insertq
	{[4]byte{0x0F, 0x79}, flags.PREF_F2, feats.SSE4A | feats.AMD, 0<<11 | 309, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x78}, flags.PREF_F2, feats.AMD | feats.SSE4A, 1<<11 | 309, 2<<4 | 15, argp_yoyoibib},
	// insw
	{[4]byte{0x6D}, flags.WORD_SIZE | flags.REP, 0, 0<<11 | 310, 1<<4 | 15, argp_},
	// int
	{[4]byte{0xCD}, 0, 0, 0<<11 | 311, 1<<4 | 15, argp_ib},
	// int01
	{[4]byte{0xF1}, 0, 0, 0<<11 | 312, 1<<4 | 15, argp_},
	// int03
	{[4]byte{0xCC}, 0, 0, 0<<11 | 313, 1<<4 | 15, argp_},
	// int1
	{[4]byte{0xF1}, 0, 0, 0<<11 | 314, 1<<4 | 15, argp_},
	// int3
	{[4]byte{0xCC}, 0, 0, 0<<11 | 315, 1<<4 | 15, argp_},
	// into
	{[4]byte{0xCE}, flags.X86_ONLY, 0, 0<<11 | 316, 1<<4 | 15, argp_},
	// invd
	{[4]byte{0x0F, 0x08}, 0, 0, 0<<11 | 317, 2<<4 | 15, argp_},
	// invept
	{[4]byte{0x0F, 0x38, 0x80}, flags.PREF_66, feats.VMX, 0<<11 | 318, 3<<4 | 15, argp_rqmo},
	// invlpg
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 319, 2<<4 | 7, argp_m1},
	// invlpga
	{[4]byte{0x0F, 0x01, 0xDF}, 0, feats.AMD, 0<<11 | 320, 3<<4 | 15, argp_},
	{[4]byte{0x0F, 0x01, 0xDF}, 0, feats.AMD, 1<<11 | 320, 3<<4 | 15, argp_AqBd},
	// invpcid
	{[4]byte{0x0F, 0x38, 0x82}, flags.PREF_66, feats.INVPCID, 0<<11 | 321, 3<<4 | 15, argp_rqmo},
	// invvpid
	{[4]byte{0x0F, 0x38, 0x81}, flags.PREF_66, feats.VMX, 0<<11 | 322, 3<<4 | 15, argp_rqmo},
	// iret
	{[4]byte{0xCF}, 0, 0, 0<<11 | 323, 1<<4 | 15, argp_},
	// iretd
	{[4]byte{0xCF}, 0, 0, 0<<11 | 324, 1<<4 | 15, argp_},
	// iretq
	{[4]byte{0xCF}, flags.WITH_REXW, 0, 0<<11 | 325, 1<<4 | 15, argp_},
	// iretw
	{[4]byte{0xCF}, flags.WORD_SIZE, 0, 0<<11 | 326, 1<<4 | 15, argp_},
	// ja
	{[4]byte{0x77}, flags.EXACT_SIZE, 0, 0<<11 | 327, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x87}, 0, 0, 1<<11 | 327, 2<<4 | 15, argp_od},
	// jae
	{[4]byte{0x73}, flags.EXACT_SIZE, 0, 0<<11 | 328, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x83}, 0, 0, 1<<11 | 328, 2<<4 | 15, argp_od},
	// jb
	{[4]byte{0x72}, flags.EXACT_SIZE, 0, 0<<11 | 329, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x82}, 0, 0, 1<<11 | 329, 2<<4 | 15, argp_od},
	// jbe
	{[4]byte{0x76}, flags.EXACT_SIZE, 0, 0<<11 | 330, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x86}, 0, 0, 1<<11 | 330, 2<<4 | 15, argp_od},
	// jc
	{[4]byte{0x72}, flags.EXACT_SIZE, 0, 0<<11 | 331, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x82}, 0, 0, 1<<11 | 331, 2<<4 | 15, argp_od},
	// je
	{[4]byte{0x74}, flags.EXACT_SIZE, 0, 0<<11 | 332, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x84}, 0, 0, 1<<11 | 332, 2<<4 | 15, argp_od},
	// jecxz
	{[4]byte{0xE3}, flags.PREF_67, 0, 0<<11 | 333, 1<<4 | 15, argp_ob},
	// jg
	{[4]byte{0x7F}, flags.EXACT_SIZE, 0, 0<<11 | 334, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8F}, 0, 0, 1<<11 | 334, 2<<4 | 15, argp_od},
	// jge
	{[4]byte{0x7D}, flags.EXACT_SIZE, 0, 0<<11 | 335, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8D}, 0, 0, 1<<11 | 335, 2<<4 | 15, argp_od},
	// jl
	{[4]byte{0x7C}, flags.EXACT_SIZE, 0, 0<<11 | 336, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8C}, 0, 0, 1<<11 | 336, 2<<4 | 15, argp_od},
	// jle
	{[4]byte{0x7E}, flags.EXACT_SIZE, 0, 0<<11 | 337, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8E}, 0, 0, 1<<11 | 337, 2<<4 | 15, argp_od},
	// jmp
	{[4]byte{0x9A}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 338, 1<<4 | 15, argp_iwiw},
	{[4]byte{0xEA}, flags.X86_ONLY, 0, 1<<11 | 338, 1<<4 | 15, argp_idiw},
	{[4]byte{0xFF}, flags.X86_ONLY | flags.EXACT_SIZE, 0, 2<<11 | 338, 1<<4 | 5, argp_mf},
	{[4]byte{0xEB}, flags.EXACT_SIZE, 0, 3<<11 | 338, 1<<4 | 15, argp_ob},
	{[4]byte{0xE9}, 0, 0, 4<<11 | 338, 1<<4 | 15, argp_od},
	{[4]byte{0xFF}, flags.AUTO_NO32, 0, 5<<11 | 338, 1<<4 | 4, argp_v0},
	// jmpf
	{[4]byte{0x9A}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 0<<11 | 339, 1<<4 | 15, argp_iwiw},
	{[4]byte{0xEA}, flags.X86_ONLY, 0, 1<<11 | 339, 1<<4 | 15, argp_idiw},
	{[4]byte{0xFF}, flags.X86_ONLY | flags.WORD_SIZE | flags.EXACT_SIZE, 0, 2<<11 | 339, 1<<4 | 5, argp_md},
	{[4]byte{0xFF}, flags.X86_ONLY, 0, 3<<11 | 339, 1<<4 | 5, argp_mf},
	// jna
	{[4]byte{0x76}, flags.EXACT_SIZE, 0, 0<<11 | 340, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x86}, 0, 0, 1<<11 | 340, 2<<4 | 15, argp_od},
	// jnae
	{[4]byte{0x72}, flags.EXACT_SIZE, 0, 0<<11 | 341, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x82}, 0, 0, 1<<11 | 341, 2<<4 | 15, argp_od},
	// jnb
	{[4]byte{0x73}, flags.EXACT_SIZE, 0, 0<<11 | 342, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x83}, 0, 0, 1<<11 | 342, 2<<4 | 15, argp_od},
	// jnbe
	{[4]byte{0x77}, flags.EXACT_SIZE, 0, 0<<11 | 343, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x87}, 0, 0, 1<<11 | 343, 2<<4 | 15, argp_od},
	// jnc
	{[4]byte{0x73}, flags.EXACT_SIZE, 0, 0<<11 | 344, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x83}, 0, 0, 1<<11 | 344, 2<<4 | 15, argp_od},
	// jne
	{[4]byte{0x75}, flags.EXACT_SIZE, 0, 0<<11 | 345, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x85}, 0, 0, 1<<11 | 345, 2<<4 | 15, argp_od},
	// jng
	{[4]byte{0x7E}, flags.EXACT_SIZE, 0, 0<<11 | 346, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8E}, 0, 0, 1<<11 | 346, 2<<4 | 15, argp_od},
	// jnge
	{[4]byte{0x7C}, flags.EXACT_SIZE, 0, 0<<11 | 347, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8C}, 0, 0, 1<<11 | 347, 2<<4 | 15, argp_od},
	// jnl
	{[4]byte{0x7D}, flags.EXACT_SIZE, 0, 0<<11 | 348, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8D}, 0, 0, 1<<11 | 348, 2<<4 | 15, argp_od},
	// jnle
	{[4]byte{0x7F}, flags.EXACT_SIZE, 0, 0<<11 | 349, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8F}, 0, 0, 1<<11 | 349, 2<<4 | 15, argp_od},
	// jno
	{[4]byte{0x71}, flags.EXACT_SIZE, 0, 0<<11 | 350, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x81}, 0, 0, 1<<11 | 350, 2<<4 | 15, argp_od},
	// jnp
	{[4]byte{0x7B}, flags.EXACT_SIZE, 0, 0<<11 | 351, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8B}, 0, 0, 1<<11 | 351, 2<<4 | 15, argp_od},
	// jns
	{[4]byte{0x79}, flags.EXACT_SIZE, 0, 0<<11 | 352, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x89}, 0, 0, 1<<11 | 352, 2<<4 | 15, argp_od},
	// jnz
	{[4]byte{0x75}, flags.EXACT_SIZE, 0, 0<<11 | 353, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x85}, 0, 0, 1<<11 | 353, 2<<4 | 15, argp_od},
	// jo
	{[4]byte{0x70}, flags.EXACT_SIZE, 0, 0<<11 | 354, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x80}, 0, 0, 1<<11 | 354, 2<<4 | 15, argp_od},
	// jp
	{[4]byte{0x7A}, flags.EXACT_SIZE, 0, 0<<11 | 355, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8A}, 0, 0, 1<<11 | 355, 2<<4 | 15, argp_od},
	// jpe
	{[4]byte{0x7A}, flags.EXACT_SIZE, 0, 0<<11 | 356, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8A}, 0, 0, 1<<11 | 356, 2<<4 | 15, argp_od},
	// jpo
	{[4]byte{0x7B}, flags.EXACT_SIZE, 0, 0<<11 | 357, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x8B}, 0, 0, 1<<11 | 357, 2<<4 | 15, argp_od},
	// jrcxz
	{[4]byte{0xE3}, 0, 0, 0<<11 | 358, 1<<4 | 15, argp_ob},
	// js
	{[4]byte{0x78}, flags.EXACT_SIZE, 0, 0<<11 | 359, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x88}, 0, 0, 1<<11 | 359, 2<<4 | 15, argp_od},
	// jz
	{[4]byte{0x74}, flags.EXACT_SIZE, 0, 0<<11 | 360, 1<<4 | 15, argp_ob},
	{[4]byte{0x0F, 0x84}, 0, 0, 1<<11 | 360, 2<<4 | 15, argp_od},
	// lahf
	{[4]byte{0x9F}, 0, 0, 0<<11 | 361, 1<<4 | 15, argp_},
	// lar
	{[4]byte{0x0F, 0x02}, flags.AUTO_SIZE, 0, 0<<11 | 362, 2<<4 | 15, argp_r0mw},
	{[4]byte{0x0F, 0x02}, flags.AUTO_SIZE, 0, 1<<11 | 362, 2<<4 | 15, argp_r0r0},
	// lddqu
	{[4]byte{0x0F, 0xF0}, flags.PREF_F2, feats.SSE3, 0<<11 | 363, 2<<4 | 15, argp_yomo},
	// ldmxcsr
	{[4]byte{0x0F, 0xAE}, 0, feats.SSE, 0<<11 | 364, 2<<4 | 2, argp_md},
	// lds
	{[4]byte{0xC5}, flags.AUTO_SIZE | flags.X86_ONLY, 0, 0<<11 | 365, 1<<4 | 15, argp_r0m1},
	// lea
	{[4]byte{0x8D}, flags.AUTO_SIZE, 0, 0<<11 | 366, 1<<4 | 15, argp_r0m1},
	// leave
	{[4]byte{0xC9}, 0, 0, 0<<11 | 367, 1<<4 | 15, argp_},
	// les
	{[4]byte{0xC4}, flags.AUTO_SIZE | flags.X86_ONLY, 0, 0<<11 | 368, 1<<4 | 15, argp_r0m1},
	// lfence
	{[4]byte{0x0F, 0xAE, 0xE8}, 0, feats.AMD, 0<<11 | 369, 3<<4 | 15, argp_},
	// lfs
	{[4]byte{0x0F, 0xB4}, flags.AUTO_SIZE, 0, 0<<11 | 370, 2<<4 | 15, argp_r0m1},
	// lgdt
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 371, 2<<4 | 2, argp_m1},
	// lgs
	{[4]byte{0x0F, 0xB5}, flags.AUTO_SIZE, 0, 0<<11 | 372, 2<<4 | 15, argp_r0m1},
	// lidt
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 373, 2<<4 | 3, argp_m1},
	// lldt
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 374, 2<<4 | 2, argp_m1},
	{[4]byte{0x0F, 0x00}, 0, 0, 1<<11 | 374, 2<<4 | 2, argp_rw},
	// llwpcb
	{[4]byte{0x09, 0x12}, flags.XOP_OP | flags.AUTO_REXW, feats.AMD, 0<<11 | 375, 2<<4 | 0, argp_r0},
	// lmsw
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 376, 2<<4 | 6, argp_m1},
	{[4]byte{0x0F, 0x01}, 0, 0, 1<<11 | 376, 2<<4 | 6, argp_rw},
	// lodsb
	{[4]byte{0xAC}, flags.REP, 0, 0<<11 | 377, 1<<4 | 15, argp_},
	// lodsd
	{[4]byte{0xAD}, flags.REP, 0, 0<<11 | 378, 1<<4 | 15, argp_},
	// lodsq
	{[4]byte{0xAD}, flags.WITH_REXW | flags.REP, 0, 0<<11 | 379, 1<<4 | 15, argp_},
	// lodsw
	{[4]byte{0xAD}, flags.WORD_SIZE | flags.REP, 0, 0<<11 | 380, 1<<4 | 15, argp_},
	// loop
	{[4]byte{0xE2}, 0, 0, 0<<11 | 381, 1<<4 | 15, argp_ob},
	// loope
	{[4]byte{0xE1}, 0, 0, 0<<11 | 382, 1<<4 | 15, argp_ob},
	// loopne
	{[4]byte{0xE0}, 0, 0, 0<<11 | 383, 1<<4 | 15, argp_ob},
	// loopnz
	{[4]byte{0xE0}, 0, 0, 0<<11 | 384, 1<<4 | 15, argp_ob},
	// loopz
	{[4]byte{0xE1}, 0, 0, 0<<11 | 385, 1<<4 | 15, argp_ob},
	// lsl
	{[4]byte{0x0F, 0x03}, flags.AUTO_SIZE, 0, 0<<11 | 386, 2<<4 | 15, argp_r0mw},
	{[4]byte{0x0F, 0x03}, flags.AUTO_SIZE, 0, 1<<11 | 386, 2<<4 | 15, argp_r0r0},
	// lss
	{[4]byte{0x0F, 0xB2}, flags.AUTO_SIZE, 0, 0<<11 | 387, 2<<4 | 15, argp_r0m1},
	// ltr
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 388, 2<<4 | 3, argp_m1},
	{[4]byte{0x0F, 0x00}, 0, 0, 1<<11 | 388, 2<<4 | 3, argp_rw},
	// lwpins
	{[4]byte{0x10, 0x12}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.AMD, 0<<11 | 389, 2<<4 | 0, argp_r0v0id},
	// lwpval
	{[4]byte{0x10, 0x12}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.AMD, 0<<11 | 390, 2<<4 | 1, argp_r0v0id},
	// lzcnt
	{[4]byte{0x0F, 0xBD}, flags.AUTO_SIZE | flags.PREF_F3, feats.AMD, 0<<11 | 391, 2<<4 | 15, argp_r0v0},
	// maskmovdqu
	{[4]byte{0x0F, 0xF7}, flags.PREF_66, feats.SSE2, 0<<11 | 392, 2<<4 | 15, argp_yoyo},
	// maskmovq
	{[4]byte{0x0F, 0xF7}, 0, feats.MMX, 0<<11 | 393, 2<<4 | 15, argp_xqxq},
	// maxpd
	{[4]byte{0x0F, 0x5F}, flags.PREF_66, feats.SSE2, 0<<11 | 394, 2<<4 | 15, argp_yowo},
	// maxps
	{[4]byte{0x0F, 0x5F}, 0, feats.SSE, 0<<11 | 395, 2<<4 | 15, argp_yowo},
	// maxsd
	{[4]byte{0x0F, 0x5F}, flags.PREF_F2, feats.SSE2, 0<<11 | 396, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5F}, flags.PREF_F2, feats.SSE2, 1<<11 | 396, 2<<4 | 15, argp_yoyo},
	// maxss
	{[4]byte{0x0F, 0x5F}, flags.PREF_F3, feats.SSE, 0<<11 | 397, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x5F}, flags.PREF_F3, feats.SSE, 1<<11 | 397, 2<<4 | 15, argp_yoyo},
	// mfence
	{[4]byte{0x0F, 0xAE, 0xF0}, 0, feats.AMD, 0<<11 | 398, 3<<4 | 15, argp_},
	// minpd
	{[4]byte{0x0F, 0x5D}, flags.PREF_66, feats.SSE2, 0<<11 | 399, 2<<4 | 15, argp_yowo},
	// minps
	{[4]byte{0x0F, 0x5D}, 0, feats.SSE, 0<<11 | 400, 2<<4 | 15, argp_yowo},
	// minsd
	{[4]byte{0x0F, 0x5D}, flags.PREF_F2, feats.SSE2, 0<<11 | 401, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5D}, flags.PREF_F2, feats.SSE2, 1<<11 | 401, 2<<4 | 15, argp_yoyo},
	// minss
	{[4]byte{0x0F, 0x5D}, flags.PREF_F3, feats.SSE, 0<<11 | 402, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x5D}, flags.PREF_F3, feats.SSE, 1<<11 | 402, 2<<4 | 15, argp_yoyo},
	// monitor
	{[4]byte{0x0F, 0x01, 0xC8}, 0, 0, 0<<11 | 403, 3<<4 | 15, argp_},
	{[4]byte{0x0F, 0x01, 0xC8}, 0, 0, 1<<11 | 403, 3<<4 | 15, argp_AqBdCd},
	// monitorx
	{[4]byte{0x0F, 0x01, 0xFA}, 0, feats.AMD, 0<<11 | 404, 3<<4 | 15, argp_},
	{[4]byte{0x0F, 0x01, 0xFA}, 0, feats.AMD, 1<<11 | 404, 3<<4 | 15, argp_A0BdCd},
	// montmul
	{[4]byte{0x0F, 0xA6, 0xC0}, flags.PREF_F3, feats.CYRIX, 0<<11 | 405, 3<<4 | 15, argp_},
	// mov
	{[4]byte{0x89}, flags.AUTO_SIZE, 0, 0<<11 | 406, 1<<4 | 15, argp_v0r0},
	{[4]byte{0x88}, 0, 0, 1<<11 | 406, 1<<4 | 15, argp_vbrb},
	{[4]byte{0x8B}, flags.AUTO_SIZE, 0, 2<<11 | 406, 1<<4 | 15, argp_r0v0},
	{[4]byte{0x8A}, 0, 0, 3<<11 | 406, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x8C}, flags.AUTO_SIZE, 0, 4<<11 | 406, 1<<4 | 15, argp_r0sw},
	{[4]byte{0x8C}, 0, 0, 5<<11 | 406, 1<<4 | 15, argp_mwsw},
	{[4]byte{0x8C}, 0, 0, 6<<11 | 406, 1<<4 | 15, argp_swmw},
	{[4]byte{0x8C}, 0, 0, 7<<11 | 406, 1<<4 | 15, argp_swrw},
	{[4]byte{0xB0}, flags.SHORT_ARG, 0, 8<<11 | 406, 1<<4 | 15, argp_rbib},
	{[4]byte{0xB8}, flags.WORD_SIZE | flags.SHORT_ARG, 0, 9<<11 | 406, 1<<4 | 15, argp_rwiw},
	{[4]byte{0xB8}, flags.SHORT_ARG, 0, 10<<11 | 406, 1<<4 | 15, argp_rdid},
	{[4]byte{0xC7}, flags.AUTO_SIZE, 0, 11<<11 | 406, 1<<4 | 0, argp_v0i0},
	{[4]byte{0xC6}, 0, 0, 12<<11 | 406, 1<<4 | 0, argp_vbib},
	{[4]byte{0xB8}, flags.WITH_REXW | flags.SHORT_ARG, 0, 13<<11 | 406, 1<<4 | 15, argp_rqiq},
	{[4]byte{0x0F, 0x22}, 0, 0, 14<<11 | 406, 2<<4 | 15, argp_cdrd},
	{[4]byte{0x0F, 0x22}, 0, 0, 15<<11 | 406, 2<<4 | 15, argp_cqrq},
	{[4]byte{0x0F, 0x20}, 0, 0, 16<<11 | 406, 2<<4 | 15, argp_rdcd},
	{[4]byte{0x0F, 0x20}, 0, 0, 17<<11 | 406, 2<<4 | 15, argp_rqcq},
	{[4]byte{0x0F, 0x22}, flags.PREF_F0, 0, 18<<11 | 406, 2<<4 | 0, argp_Wdrd},
	{[4]byte{0x0F, 0x22}, flags.PREF_F0, 0, 19<<11 | 406, 2<<4 | 0, argp_Wqrq},
	{[4]byte{0x0F, 0x22}, flags.PREF_F0, 0, 20<<11 | 406, 2<<4 | 0, argp_rdWd},
	{[4]byte{0x0F, 0x22}, flags.PREF_F0, 0, 21<<11 | 406, 2<<4 | 0, argp_rqWq},
	{[4]byte{0x0F, 0x23}, 0, 0, 22<<11 | 406, 2<<4 | 15, argp_ddrd},
	{[4]byte{0x0F, 0x23}, 0, 0, 23<<11 | 406, 2<<4 | 15, argp_dqrq},
	{[4]byte{0x0F, 0x21}, 0, 0, 24<<11 | 406, 2<<4 | 15, argp_rddd},
	{[4]byte{0x0F, 0x21}, 0, 0, 25<<11 | 406, 2<<4 | 15, argp_rqdq},
	// movabs
	{[4]byte{0xA0}, 0, 0, 0<<11 | 407, 1<<4 | 15, argp_Abiq},
	{[4]byte{0xA1}, flags.WORD_SIZE, 0, 1<<11 | 407, 1<<4 | 15, argp_Awiq},
	{[4]byte{0xA1}, 0, 0, 2<<11 | 407, 1<<4 | 15, argp_Adiq},
	{[4]byte{0xA1}, flags.WITH_REXW, 0, 3<<11 | 407, 1<<4 | 15, argp_Aqiq},
	{[4]byte{0xA2}, 0, 0, 4<<11 | 407, 1<<4 | 15, argp_iqAb},
	{[4]byte{0xA3}, flags.WORD_SIZE, 0, 5<<11 | 407, 1<<4 | 15, argp_iqAw},
	{[4]byte{0xA3}, 0, 0, 6<<11 | 407, 1<<4 | 15, argp_iqAd},
	{[4]byte{0xA3}, flags.WITH_REXW, 0, 7<<11 | 407, 1<<4 | 15, argp_iqAq},
	// movapd
	{[4]byte{0x0F, 0x29}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 408, 2<<4 | 15, argp_moyo},
	{[4]byte{0x0F, 0x28}, flags.PREF_66, feats.SSE2, 1<<11 | 408, 2<<4 | 15, argp_yomo},
	{[4]byte{0x0F, 0x28}, flags.PREF_66, feats.SSE2, 2<<11 | 408, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x29}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 3<<11 | 408, 2<<4 | 15, argp_yoyo},
	// movaps
	{[4]byte{0x0F, 0x28}, 0, feats.SSE, 0<<11 | 409, 2<<4 | 15, argp_yowo},
	{[4]byte{0x0F, 0x29}, flags.ENC_MR, feats.SSE, 1<<11 | 409, 2<<4 | 15, argp_woyo},
	// movbe
	{[4]byte{0x0F, 0x38, 0xF1}, flags.AUTO_SIZE | flags.ENC_MR, 0, 0<<11 | 410, 3<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0x38, 0xF0}, flags.AUTO_SIZE, 0, 1<<11 | 410, 3<<4 | 15, argp_r0m0},
	// movd
	{[4]byte{0x0F, 0x7E}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 411, 2<<4 | 15, argp_mdyo},
	{[4]byte{0x0F, 0x6E}, 0, feats.MMX, 1<<11 | 411, 2<<4 | 15, argp_xqvd},
	{[4]byte{0x0F, 0x6E}, flags.WITH_REXW, feats.MMX, 2<<11 | 411, 2<<4 | 15, argp_xqvq},
	{[4]byte{0x0F, 0x6E}, flags.PREF_66, feats.SSE2, 3<<11 | 411, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x6E}, flags.PREF_66, feats.SSE2, 4<<11 | 411, 2<<4 | 15, argp_yovd},
	{[4]byte{0x0F, 0x7E}, flags.ENC_MR, feats.MMX, 5<<11 | 411, 2<<4 | 15, argp_vdxq},
	{[4]byte{0x0F, 0x7E}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 6<<11 | 411, 2<<4 | 15, argp_vdyo},
	{[4]byte{0x0F, 0x7E}, flags.WITH_REXW | flags.ENC_MR, feats.MMX, 7<<11 | 411, 2<<4 | 15, argp_vqxq},
	// movddup
	{[4]byte{0x0F, 0x12}, flags.PREF_F2, feats.SSE3, 0<<11 | 412, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x12}, flags.PREF_F2, feats.SSE3, 1<<11 | 412, 2<<4 | 15, argp_yoyo},
	// movdq2q
	{[4]byte{0x0F, 0xD6}, flags.PREF_F2, feats.SSE2, 0<<11 | 413, 2<<4 | 15, argp_xqyo},
	// movdqa
	{[4]byte{0x0F, 0x7F}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 414, 2<<4 | 15, argp_moyo},
	{[4]byte{0x0F, 0x6F}, flags.PREF_66, feats.SSE2, 1<<11 | 414, 2<<4 | 15, argp_yomo},
	{[4]byte{0x0F, 0x6F}, flags.PREF_66, feats.SSE2, 2<<11 | 414, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x7F}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 3<<11 | 414, 2<<4 | 15, argp_yoyo},
	// movdqu
	{[4]byte{0x0F, 0x7F}, flags.ENC_MR | flags.PREF_F3, feats.SSE2, 0<<11 | 415, 2<<4 | 15, argp_moyo},
	{[4]byte{0x0F, 0x6F}, flags.PREF_F3, feats.SSE2, 1<<11 | 415, 2<<4 | 15, argp_yomo},
	{[4]byte{0x0F, 0x6F}, flags.PREF_F3, feats.SSE2, 2<<11 | 415, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x7F}, flags.ENC_MR | flags.PREF_F3, feats.SSE2, 3<<11 | 415, 2<<4 | 15, argp_yoyo},
	// movhlps
	{[4]byte{0x0F, 0x12}, 0, feats.SSE, 0<<11 | 416, 2<<4 | 15, argp_yoyo},
	// movhpd
	{[4]byte{0x0F, 0x17}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 417, 2<<4 | 15, argp_m1yo},
	{[4]byte{0x0F, 0x16}, flags.PREF_66, feats.SSE2, 1<<11 | 417, 2<<4 | 15, argp_yom1},
	// movhps
	{[4]byte{0x0F, 0x17}, flags.ENC_MR, feats.SSE, 0<<11 | 418, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x0F, 0x16}, 0, feats.SSE, 1<<11 | 418, 2<<4 | 15, argp_yomq},
	// movlhps
	{[4]byte{0x0F, 0x16}, 0, feats.SSE, 0<<11 | 419, 2<<4 | 15, argp_yoyo},
	// movlpd
	{[4]byte{0x0F, 0x13}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 420, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x0F, 0x12}, flags.PREF_66, feats.SSE2, 1<<11 | 420, 2<<4 | 15, argp_yomq},
	// movlps
	{[4]byte{0x0F, 0x13}, flags.ENC_MR, feats.SSE, 0<<11 | 421, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x0F, 0x12}, 0, feats.SSE, 1<<11 | 421, 2<<4 | 15, argp_yomq},
	// movmskpd
	{[4]byte{0x0F, 0x50}, flags.PREF_66, feats.SSE2, 0<<11 | 422, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x50}, flags.WITH_REXW | flags.PREF_66, feats.SSE2, 1<<11 | 422, 2<<4 | 15, argp_rqyo},
	// movmskps
	{[4]byte{0x0F, 0x50}, 0, feats.SSE, 0<<11 | 423, 2<<4 | 15, argp_rdyo},
	{[4]byte{0x0F, 0x50}, flags.WITH_REXW, feats.SSE, 1<<11 | 423, 2<<4 | 15, argp_rqyo},
	// movntdq
	{[4]byte{0x0F, 0xE7}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 424, 2<<4 | 15, argp_moyo},
	// movntdqa
	{[4]byte{0x0F, 0x38, 0x2A}, flags.PREF_66, feats.SSE41, 0<<11 | 425, 3<<4 | 15, argp_yomo},
	// movnti
	{[4]byte{0x0F, 0xC3}, flags.ENC_MR, 0, 0<<11 | 426, 2<<4 | 15, argp_mdrd},
	{[4]byte{0x0F, 0xC3}, flags.WITH_REXW | flags.ENC_MR, 0, 1<<11 | 426, 2<<4 | 15, argp_mqrq},
	// movntpd
	{[4]byte{0x0F, 0x2B}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 427, 2<<4 | 15, argp_moyo},
	// movntps
	{[4]byte{0x0F, 0x2B}, flags.ENC_MR, feats.SSE, 0<<11 | 428, 2<<4 | 15, argp_moyo},
	// movntq
	{[4]byte{0x0F, 0xE7}, flags.ENC_MR, feats.MMX, 0<<11 | 429, 2<<4 | 15, argp_mqxq},
	// movntsd
	{[4]byte{0x0F, 0x2B}, flags.ENC_MR | flags.PREF_F2, feats.AMD | feats.SSE4A, 0<<11 | 430, 2<<4 | 15, argp_mqyo},
	// movntss
	{[4]byte{0x0F, 0x2B}, flags.ENC_MR | flags.PREF_F3, feats.SSE4A | feats.AMD, 0<<11 | 431, 2<<4 | 15, argp_mdyo},
	// movq
	{[4]byte{0x0F, 0xD6}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 432, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x0F, 0x6F}, 0, feats.MMX, 1<<11 | 432, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x6E}, flags.WITH_REXW, feats.MMX, 2<<11 | 432, 2<<4 | 15, argp_xqvq},
	{[4]byte{0x0F, 0x7E}, flags.PREF_F3, feats.SSE2, 3<<11 | 432, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x6E}, flags.WITH_REXW | flags.PREF_66, feats.SSE2, 4<<11 | 432, 2<<4 | 15, argp_yovq},
	{[4]byte{0x0F, 0x7E}, flags.PREF_F3, feats.SSE2, 5<<11 | 432, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0xD6}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 6<<11 | 432, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x7F}, flags.ENC_MR, feats.MMX, 7<<11 | 432, 2<<4 | 15, argp_uqxq},
	{[4]byte{0x0F, 0x7E}, flags.WITH_REXW | flags.ENC_MR, feats.MMX, 8<<11 | 432, 2<<4 | 15, argp_vqxq},
	{[4]byte{0x0F, 0x7E}, flags.WITH_REXW | flags.ENC_MR | flags.PREF_66, feats.SSE2, 9<<11 | 432, 2<<4 | 15, argp_vqyo},
	// movq2dq
	{[4]byte{0x0F, 0xD6}, flags.PREF_F3, feats.SSE2, 0<<11 | 433, 2<<4 | 15, argp_yoxq},
	// movsb
	{[4]byte{0xA4}, flags.REP, 0, 0<<11 | 434, 1<<4 | 15, argp_},
	// movsd
	{[4]byte{0xA5}, flags.REP, 0, 0<<11 | 435, 1<<4 | 15, argp_},
	{[4]byte{0x0F, 0x11}, flags.ENC_MR | flags.PREF_F2, feats.SSE2, 1<<11 | 435, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x0F, 0x10}, flags.PREF_F2, feats.SSE2, 2<<11 | 435, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x10}, flags.PREF_F2, feats.SSE2, 3<<11 | 435, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x11}, flags.ENC_MR | flags.PREF_F2, feats.SSE2, 4<<11 | 435, 2<<4 | 15, argp_yoyo},
	// movshdup
	{[4]byte{0x0F, 0x16}, flags.PREF_F3, feats.SSE3, 0<<11 | 436, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x16}, flags.PREF_F3, feats.SSE3, 1<<11 | 436, 2<<4 | 15, argp_yoyo},
	// movsldup
	{[4]byte{0x0F, 0x12}, flags.PREF_F3, feats.SSE3, 0<<11 | 437, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x12}, flags.PREF_F3, feats.SSE3, 1<<11 | 437, 2<<4 | 15, argp_yoyo},
	// movsq
	{[4]byte{0xA5}, flags.WITH_REXW | flags.REP, 0, 0<<11 | 438, 1<<4 | 15, argp_},
	// movss
	{[4]byte{0x0F, 0x11}, flags.ENC_MR | flags.PREF_F3, feats.SSE, 0<<11 | 439, 2<<4 | 15, argp_mdyo},
	{[4]byte{0x0F, 0x10}, flags.PREF_F3, feats.SSE, 1<<11 | 439, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x10}, flags.PREF_F3, feats.SSE, 2<<11 | 439, 2<<4 | 15, argp_yoyo},
	// movsw
	{[4]byte{0xA5}, flags.WORD_SIZE | flags.REP, 0, 0<<11 | 440, 1<<4 | 15, argp_},
	// movsx
	{[4]byte{0x63}, flags.WITH_REXW, 0, 0<<11 | 441, 1<<4 | 15, argp_rqvd},
	{[4]byte{0x0F, 0xBE}, flags.WORD_SIZE, 0, 1<<11 | 441, 2<<4 | 15, argp_rwmb},
	{[4]byte{0x0F, 0xBE}, flags.AUTO_SIZE, 0, 2<<11 | 441, 2<<4 | 15, argp_r0vb},
	{[4]byte{0x0F, 0xBF}, flags.AUTO_REXW | flags.EXACT_SIZE, 0, 3<<11 | 441, 2<<4 | 15, argp_r0vw},
	// movsxd
	{[4]byte{0x63}, flags.WITH_REXW, 0, 0<<11 | 442, 1<<4 | 15, argp_rqvd},
	// movupd
	{[4]byte{0x0F, 0x11}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 0<<11 | 443, 2<<4 | 15, argp_moyo},
	{[4]byte{0x0F, 0x10}, flags.PREF_66, feats.SSE2, 1<<11 | 443, 2<<4 | 15, argp_yomo},
	{[4]byte{0x0F, 0x10}, flags.PREF_66, feats.SSE2, 2<<11 | 443, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x0F, 0x11}, flags.ENC_MR | flags.PREF_66, feats.SSE2, 3<<11 | 443, 2<<4 | 15, argp_yoyo},
	// movups
	{[4]byte{0x0F, 0x10}, 0, feats.SSE, 0<<11 | 444, 2<<4 | 15, argp_yowo},
	{[4]byte{0x0F, 0x11}, flags.ENC_MR, feats.SSE, 1<<11 | 444, 2<<4 | 15, argp_woyo},
	// movzx
	{[4]byte{0x0F, 0xB6}, flags.WORD_SIZE, 0, 0<<11 | 445, 2<<4 | 15, argp_rwmb},
	{[4]byte{0x0F, 0xB6}, flags.AUTO_SIZE, 0, 1<<11 | 445, 2<<4 | 15, argp_r0vb},
	{[4]byte{0x0F, 0xB7}, flags.AUTO_REXW | flags.EXACT_SIZE, 0, 2<<11 | 445, 2<<4 | 15, argp_r0vw},
	// mpsadbw
	{[4]byte{0x0F, 0x3A, 0x42}, flags.PREF_66, feats.SSE41, 0<<11 | 446, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x42}, flags.PREF_66, feats.SSE41, 1<<11 | 446, 3<<4 | 15, argp_yoyoib},
	// mul
	{[4]byte{0xF6}, 0, 0, 0<<11 | 447, 1<<4 | 4, argp_vb},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 1<<11 | 447, 1<<4 | 4, argp_v0},
	// mulpd
	{[4]byte{0x0F, 0x59}, flags.PREF_66, feats.SSE2, 0<<11 | 448, 2<<4 | 15, argp_yowo},
	// mulps
	{[4]byte{0x0F, 0x59}, 0, feats.SSE, 0<<11 | 449, 2<<4 | 15, argp_yowo},
	// mulsd
	{[4]byte{0x0F, 0x59}, flags.PREF_F2, feats.SSE2, 0<<11 | 450, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x59}, flags.PREF_F2, feats.SSE2, 1<<11 | 450, 2<<4 | 15, argp_yoyo},
	// mulss
	{[4]byte{0x0F, 0x59}, flags.PREF_F3, feats.SSE, 0<<11 | 451, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x59}, flags.PREF_F3, feats.SSE, 1<<11 | 451, 2<<4 | 15, argp_yoyo},
	// mulx
	{[4]byte{0x02, 0xF6}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.BMI2, 0<<11 | 452, 2<<4 | 15, argp_r0r0v0},
	// mwait
	{[4]byte{0x0F, 0x01, 0xC9}, 0, 0, 0<<11 | 453, 3<<4 | 15, argp_},
	{[4]byte{0x0F, 0x01, 0xC9}, 0, 0, 1<<11 | 453, 3<<4 | 15, argp_AdBd},
	// mwaitx
	{[4]byte{0x0F, 0x01, 0xFB}, 0, feats.AMD, 0<<11 | 454, 3<<4 | 15, argp_},
	{[4]byte{0x0F, 0x01, 0xFB}, 0, feats.AMD, 1<<11 | 454, 3<<4 | 15, argp_AdBd},
	// neg
	{[4]byte{0xF6}, flags.LOCK, 0, 0<<11 | 455, 1<<4 | 3, argp_mb},
	{[4]byte{0xF6}, 0, 0, 1<<11 | 455, 1<<4 | 3, argp_rb},
	{[4]byte{0xF7}, flags.AUTO_SIZE | flags.LOCK, 0, 2<<11 | 455, 1<<4 | 3, argp_m0},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 3<<11 | 455, 1<<4 | 3, argp_r0},
	// nop
	{[4]byte{0x90}, 0, 0, 0<<11 | 456, 1<<4 | 15, argp_},
	{[4]byte{0x0F, 0x1F}, flags.AUTO_SIZE, 0, 1<<11 | 456, 2<<4 | 0, argp_v0},
	// not
	{[4]byte{0xF6}, flags.LOCK, 0, 0<<11 | 457, 1<<4 | 2, argp_mb},
	{[4]byte{0xF6}, 0, 0, 1<<11 | 457, 1<<4 | 2, argp_rb},
	{[4]byte{0xF7}, flags.AUTO_SIZE | flags.LOCK, 0, 2<<11 | 457, 1<<4 | 2, argp_m0},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 3<<11 | 457, 1<<4 | 2, argp_r0},
	// or
	{[4]byte{0x0C}, 0, 0, 0<<11 | 458, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 458, 1<<4 | 1, argp_mbib},
	{[4]byte{0x08}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 458, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 458, 1<<4 | 1, argp_rbib},
	{[4]byte{0x08}, flags.ENC_MR, 0, 4<<11 | 458, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x0A}, 0, 0, 5<<11 | 458, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 458, 1<<4 | 1, argp_r0ib},
	{[4]byte{0x0D}, flags.AUTO_SIZE, 0, 7<<11 | 458, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 458, 1<<4 | 1, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 458, 1<<4 | 1, argp_m0ib},
	{[4]byte{0x09}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 458, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 458, 1<<4 | 1, argp_r0i0},
	{[4]byte{0x09}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 458, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x0B}, flags.AUTO_SIZE, 0, 13<<11 | 458, 1<<4 | 15, argp_r0v0},
	// orpd
	{[4]byte{0x0F, 0x56}, flags.PREF_66, feats.SSE2, 0<<11 | 459, 2<<4 | 15, argp_yowo},
	// orps
	{[4]byte{0x0F, 0x56}, 0, feats.SSE, 0<<11 | 460, 2<<4 | 15, argp_yowo},
	// out
	{[4]byte{0xE6}, 0, 0, 0<<11 | 461, 1<<4 | 15, argp_ibAb},
	{[4]byte{0xE7}, 0, 0, 1<<11 | 461, 1<<4 | 15, argp_ibAw},
	{[4]byte{0xE7}, 0, 0, 2<<11 | 461, 1<<4 | 15, argp_ibAd},
	{[4]byte{0xEE}, 0, 0, 3<<11 | 461, 1<<4 | 15, argp_CwAb},
	{[4]byte{0xEF}, flags.WORD_SIZE, 0, 4<<11 | 461, 1<<4 | 15, argp_CwAw},
	{[4]byte{0xEF}, 0, 0, 5<<11 | 461, 1<<4 | 15, argp_CwAd},
	// outsb
	{[4]byte{0x6E}, flags.REP, 0, 0<<11 | 462, 1<<4 | 15, argp_},
	// outsd
	{[4]byte{0x6F}, flags.REP, 0, 0<<11 | 463, 1<<4 | 15, argp_},
	// outsw
	{[4]byte{0x6F}, flags.WORD_SIZE | flags.REP, 0, 0<<11 | 464, 1<<4 | 15, argp_},
	// pabsb
	{[4]byte{0x0F, 0x38, 0x1C}, 0, feats.MMX | feats.SSSE3, 0<<11 | 465, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x1C}, flags.PREF_66, feats.SSSE3, 1<<11 | 465, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x1C}, flags.PREF_66, feats.SSSE3, 2<<11 | 465, 3<<4 | 15, argp_yoyo},
	// pabsd
	{[4]byte{0x0F, 0x38, 0x1E}, 0, feats.MMX | feats.SSSE3, 0<<11 | 466, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x1E}, flags.PREF_66, feats.SSSE3, 1<<11 | 466, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x1E}, flags.PREF_66, feats.SSSE3, 2<<11 | 466, 3<<4 | 15, argp_yoyo},
	// pabsw
	{[4]byte{0x0F, 0x38, 0x1D}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 467, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x1D}, flags.PREF_66, feats.SSSE3, 1<<11 | 467, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x1D}, flags.PREF_66, feats.SSSE3, 2<<11 | 467, 3<<4 | 15, argp_yoyo},
	// packssdw
	{[4]byte{0x0F, 0x6B}, 0, feats.MMX, 0<<11 | 468, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x6B}, flags.PREF_66, feats.SSE2, 1<<11 | 468, 2<<4 | 15, argp_yowo},
	// packsswb
	{[4]byte{0x0F, 0x63}, 0, feats.MMX, 0<<11 | 469, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x63}, flags.PREF_66, feats.SSE2, 1<<11 | 469, 2<<4 | 15, argp_yowo},
	// packusdw
	{[4]byte{0x0F, 0x38, 0x2B}, flags.PREF_66, feats.SSE41, 0<<11 | 470, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x2B}, flags.PREF_66, feats.SSE41, 1<<11 | 470, 3<<4 | 15, argp_yoyo},
	// packuswb
	{[4]byte{0x0F, 0x67}, 0, feats.MMX, 0<<11 | 471, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x67}, flags.PREF_66, feats.SSE2, 1<<11 | 471, 2<<4 | 15, argp_yowo},
	// paddb
	{[4]byte{0x0F, 0xFC}, 0, feats.MMX, 0<<11 | 472, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xFC}, flags.PREF_66, feats.SSE2, 1<<11 | 472, 2<<4 | 15, argp_yowo},
	// paddd
	{[4]byte{0x0F, 0xFE}, 0, feats.MMX, 0<<11 | 473, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xFE}, flags.PREF_66, feats.SSE2, 1<<11 | 473, 2<<4 | 15, argp_yowo},
	// paddq
	{[4]byte{0x0F, 0xD4}, 0, feats.MMX, 0<<11 | 474, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xD4}, flags.PREF_66, feats.SSE2, 1<<11 | 474, 2<<4 | 15, argp_yowo},
	// paddsb
	{[4]byte{0x0F, 0xEC}, 0, feats.MMX, 0<<11 | 475, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xEC}, flags.PREF_66, feats.SSE2, 1<<11 | 475, 2<<4 | 15, argp_yowo},
	// paddsiw
	{[4]byte{0x0F, 0x51}, 0, feats.MMX | feats.CYRIX, 0<<11 | 476, 2<<4 | 15, argp_xquq},
	// paddsw
	{[4]byte{0x0F, 0xED}, 0, feats.MMX, 0<<11 | 477, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xED}, flags.PREF_66, feats.SSE2, 1<<11 | 477, 2<<4 | 15, argp_yowo},
	// paddusb
	{[4]byte{0x0F, 0xDC}, 0, feats.MMX, 0<<11 | 478, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDC}, flags.PREF_66, feats.SSE2, 1<<11 | 478, 2<<4 | 15, argp_yowo},
	// paddusw
	{[4]byte{0x0F, 0xDD}, 0, feats.MMX, 0<<11 | 479, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDD}, flags.PREF_66, feats.SSE2, 1<<11 | 479, 2<<4 | 15, argp_yowo},
	// paddw
	{[4]byte{0x0F, 0xFD}, 0, feats.MMX, 0<<11 | 480, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xFD}, flags.PREF_66, feats.SSE2, 1<<11 | 480, 2<<4 | 15, argp_yowo},
	// palignr
	{[4]byte{0x0F, 0x3A, 0x0F}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 481, 3<<4 | 15, argp_xquqib},
	{[4]byte{0x0F, 0x3A, 0x0F}, flags.PREF_66, feats.SSSE3, 1<<11 | 481, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0F}, flags.PREF_66, feats.SSSE3, 2<<11 | 481, 3<<4 | 15, argp_yoyoib},
	// pand
	{[4]byte{0x0F, 0xDB}, 0, feats.MMX, 0<<11 | 482, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDB}, flags.PREF_66, feats.SSE2, 1<<11 | 482, 2<<4 | 15, argp_yowo},
	// pandn
	{[4]byte{0x0F, 0xDF}, 0, feats.MMX, 0<<11 | 483, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDF}, flags.PREF_66, feats.SSE2, 1<<11 | 483, 2<<4 | 15, argp_yowo},
	// pause
	{[4]byte{0x90}, flags.PREF_F3, 0, 0<<11 | 484, 1<<4 | 15, argp_},
	// paveb
	{[4]byte{0x0F, 0x50}, 0, feats.MMX | feats.CYRIX, 0<<11 | 485, 2<<4 | 15, argp_xquq},
	// pavgb
	{[4]byte{0x0F, 0xE0}, 0, feats.MMX, 0<<11 | 486, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE0}, flags.PREF_66, feats.SSE2, 1<<11 | 486, 2<<4 | 15, argp_yowo},
	// pavgusb
	{[4]byte{0x0F, 0x0F, 0xBF}, flags.IMM_OP, feats.TDNOW, 0<<11 | 487, 3<<4 | 15, argp_xquq},
	// pavgw
	{[4]byte{0x0F, 0xE3}, 0, feats.MMX, 0<<11 | 488, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE3}, flags.PREF_66, feats.SSE2, 1<<11 | 488, 2<<4 | 15, argp_yowo},
	// pblendvb
	{[4]byte{0x0F, 0x38, 0x10}, flags.PREF_66, feats.SSE41, 0<<11 | 489, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x10}, flags.PREF_66, feats.SSE41, 1<<11 | 489, 3<<4 | 15, argp_yoyo},
	// pblendw
	{[4]byte{0x0F, 0x3A, 0x0E}, flags.PREF_66, feats.SSE41, 0<<11 | 490, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0E}, flags.PREF_66, feats.SSE41, 1<<11 | 490, 3<<4 | 15, argp_yoyoib},
	// pclmulhqhqdq
	{[4]byte{0x0F, 0x3A, 0x44, 0x11}, flags.IMM_OP | flags.PREF_66, feats.SSE, 0<<11 | 491, 4<<4 | 15, argp_yowo},
	// pclmulhqlqdq
	{[4]byte{0x0F, 0x3A, 0x44, 0x01}, flags.PREF_66 | flags.IMM_OP, feats.SSE, 0<<11 | 492, 4<<4 | 15, argp_yowo},
	// pclmullqhqdq
	{[4]byte{0x0F, 0x3A, 0x44, 0x10}, flags.PREF_66 | flags.IMM_OP, feats.SSE, 0<<11 | 493, 4<<4 | 15, argp_yowo},
	// pclmullqlqdq
	{[4]byte{0x0F, 0x3A, 0x44, 0x00}, flags.PREF_66 | flags.IMM_OP, feats.SSE, 0<<11 | 494, 4<<4 | 15, argp_yowo},
	// pclmulqdq
	{[4]byte{0x0F, 0x3A, 0x44}, flags.PREF_66, feats.SSE, 0<<11 | 495, 3<<4 | 15, argp_yowoib},
	// pcmpeqb
	{[4]byte{0x0F, 0x74}, 0, feats.MMX, 0<<11 | 496, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x74}, flags.PREF_66, feats.SSE2, 1<<11 | 496, 2<<4 | 15, argp_yowo},
	// pcmpeqd
	{[4]byte{0x0F, 0x76}, 0, feats.MMX, 0<<11 | 497, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x76}, flags.PREF_66, feats.SSE2, 1<<11 | 497, 2<<4 | 15, argp_yowo},
	// pcmpeqq
	{[4]byte{0x0F, 0x38, 0x29}, flags.PREF_66, feats.SSE41, 0<<11 | 498, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x29}, flags.PREF_66, feats.SSE41, 1<<11 | 498, 3<<4 | 15, argp_yoyo},
	// pcmpeqw
	{[4]byte{0x0F, 0x75}, 0, feats.MMX, 0<<11 | 499, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x75}, flags.PREF_66, feats.SSE2, 1<<11 | 499, 2<<4 | 15, argp_yowo},
	// pcmpestri
	{[4]byte{0x0F, 0x3A, 0x61}, flags.PREF_66, feats.SSE42, 0<<11 | 500, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x61}, flags.PREF_66, feats.SSE42, 1<<11 | 500, 3<<4 | 15, argp_yoyoib},
	// pcmpestrm
	{[4]byte{0x0F, 0x3A, 0x60}, flags.PREF_66, feats.SSE42, 0<<11 | 501, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x60}, flags.PREF_66, feats.SSE42, 1<<11 | 501, 3<<4 | 15, argp_yoyoib},
	// pcmpgtb
	{[4]byte{0x0F, 0x64}, 0, feats.MMX, 0<<11 | 502, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x64}, flags.PREF_66, feats.SSE2, 1<<11 | 502, 2<<4 | 15, argp_yowo},
	// pcmpgtd
	{[4]byte{0x0F, 0x66}, 0, feats.MMX, 0<<11 | 503, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x66}, flags.PREF_66, feats.SSE2, 1<<11 | 503, 2<<4 | 15, argp_yowo},
	// pcmpgtq
	{[4]byte{0x0F, 0x38, 0x37}, flags.PREF_66, feats.SSE42, 0<<11 | 504, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x37}, flags.PREF_66, feats.SSE42, 1<<11 | 504, 3<<4 | 15, argp_yoyo},
	// pcmpgtw
	{[4]byte{0x0F, 0x65}, 0, feats.MMX, 0<<11 | 505, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x65}, flags.PREF_66, feats.SSE2, 1<<11 | 505, 2<<4 | 15, argp_yowo},
	// pcmpistri
	{[4]byte{0x0F, 0x3A, 0x63}, flags.PREF_66, feats.SSE42, 0<<11 | 506, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x63}, flags.PREF_66, feats.SSE42, 1<<11 | 506, 3<<4 | 15, argp_yoyoib},
	// pcmpistrm
	{[4]byte{0x0F, 0x3A, 0x62}, flags.PREF_66, feats.SSE42, 0<<11 | 507, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x62}, flags.PREF_66, feats.SSE42, 1<<11 | 507, 3<<4 | 15, argp_yoyoib},
	// pdep
	{[4]byte{0x02, 0xF5}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.BMI2, 0<<11 | 508, 2<<4 | 15, argp_r0r0v0},
	// pdistib
	{[4]byte{0x0F, 0x54}, 0, feats.MMX | feats.CYRIX, 0<<11 | 509, 2<<4 | 15, argp_xqmq},
	// pext
	{[4]byte{0x02, 0xF5}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.BMI2, 0<<11 | 510, 2<<4 | 15, argp_r0r0v0},
	// pextrb
	{[4]byte{0x0F, 0x3A, 0x14}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 0<<11 | 511, 3<<4 | 15, argp_mbyoib},
	{[4]byte{0x0F, 0x3A, 0x14}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 1<<11 | 511, 3<<4 | 15, argp_rdyoib},
	{[4]byte{0x0F, 0x3A, 0x14}, flags.WITH_REXW | flags.ENC_MR | flags.PREF_66, feats.SSE41, 2<<11 | 511, 3<<4 | 15, argp_rqyoib},
	// pextrd
	{[4]byte{0x0F, 0x3A, 0x16}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 0<<11 | 512, 3<<4 | 15, argp_vdyoib},
	// pextrq
	{[4]byte{0x0F, 0x3A, 0x16}, flags.WITH_REXW | flags.ENC_MR | flags.PREF_66, feats.SSE41, 0<<11 | 513, 3<<4 | 15, argp_vqyoib},
	// pextrw
	{[4]byte{0x0F, 0x3A, 0x15}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 0<<11 | 514, 3<<4 | 15, argp_mwyoib},
	{[4]byte{0x0F, 0xC5}, 0, feats.MMX, 1<<11 | 514, 2<<4 | 15, argp_rdxqib},
	{[4]byte{0x0F, 0xC5}, flags.PREF_66, feats.SSE2, 2<<11 | 514, 2<<4 | 15, argp_rdyoib},
	{[4]byte{0x0F, 0x3A, 0x15}, flags.ENC_MR | flags.PREF_66, feats.SSE41, 3<<11 | 514, 3<<4 | 15, argp_rdyoib},
	{[4]byte{0x0F, 0x3A, 0x15}, flags.WITH_REXW | flags.ENC_MR | flags.PREF_66, feats.SSE41, 4<<11 | 514, 3<<4 | 15, argp_rqyoib},
	// pf2id
	{[4]byte{0x0F, 0x0F, 0x1D}, flags.IMM_OP, feats.TDNOW, 0<<11 | 515, 3<<4 | 15, argp_xquq},
	// pf2iw
	{[4]byte{0x0F, 0x0F, 0x1C}, flags.IMM_OP, feats.TDNOW, 0<<11 | 516, 3<<4 | 15, argp_xquq},
	// pfacc
	{[4]byte{0x0F, 0x0F, 0xAE}, flags.IMM_OP, feats.TDNOW, 0<<11 | 517, 3<<4 | 15, argp_xquq},
	// pfadd
	{[4]byte{0x0F, 0x0F, 0x9E}, flags.IMM_OP, feats.TDNOW, 0<<11 | 518, 3<<4 | 15, argp_xquq},
	// pfcmpeq
	{[4]byte{0x0F, 0x0F, 0xB0}, flags.IMM_OP, feats.TDNOW, 0<<11 | 519, 3<<4 | 15, argp_xquq},
	// pfcmpge
	{[4]byte{0x0F, 0x0F, 0x90}, flags.IMM_OP, feats.TDNOW, 0<<11 | 520, 3<<4 | 15, argp_xquq},
	// pfcmpgt
	{[4]byte{0x0F, 0x0F, 0xA0}, flags.IMM_OP, feats.TDNOW, 0<<11 | 521, 3<<4 | 15, argp_xquq},
	// pfmax
	{[4]byte{0x0F, 0x0F, 0xA4}, flags.IMM_OP, feats.TDNOW, 0<<11 | 522, 3<<4 | 15, argp_xquq},
	// pfmin
	{[4]byte{0x0F, 0x0F, 0x94}, flags.IMM_OP, feats.TDNOW, 0<<11 | 523, 3<<4 | 15, argp_xquq},
	// pfmul
	{[4]byte{0x0F, 0x0F, 0xB4}, flags.IMM_OP, feats.TDNOW, 0<<11 | 524, 3<<4 | 15, argp_xquq},
	// pfnacc
	{[4]byte{0x0F, 0x0F, 0x8A}, flags.IMM_OP, feats.TDNOW, 0<<11 | 525, 3<<4 | 15, argp_xquq},
	// pfpnacc
	{[4]byte{0x0F, 0x0F, 0x8E}, flags.IMM_OP, feats.TDNOW, 0<<11 | 526, 3<<4 | 15, argp_xquq},
	// pfrcp
	{[4]byte{0x0F, 0x0F, 0x96}, flags.IMM_OP, feats.TDNOW, 0<<11 | 527, 3<<4 | 15, argp_xquq},
	// pfrcpit1
	{[4]byte{0x0F, 0x0F, 0xA6}, flags.IMM_OP, feats.TDNOW, 0<<11 | 528, 3<<4 | 15, argp_xquq},
	// pfrcpit2
	{[4]byte{0x0F, 0x0F, 0xB6}, flags.IMM_OP, feats.TDNOW, 0<<11 | 529, 3<<4 | 15, argp_xquq},
	// pfrcpv
	{[4]byte{0x0F, 0x0F, 0x86}, flags.IMM_OP, feats.TDNOW | feats.CYRIX, 0<<11 | 530, 3<<4 | 15, argp_xquq},
	// pfrsqit1
	{[4]byte{0x0F, 0x0F, 0xA7}, flags.IMM_OP, feats.TDNOW, 0<<11 | 531, 3<<4 | 15, argp_xquq},
	// pfrsqrt
	{[4]byte{0x0F, 0x0F, 0x97}, flags.IMM_OP, feats.TDNOW, 0<<11 | 532, 3<<4 | 15, argp_xquq},
	// pfrsqrtv
	{[4]byte{0x0F, 0x0F, 0x87}, flags.IMM_OP, feats.CYRIX | feats.TDNOW, 0<<11 | 533, 3<<4 | 15, argp_xquq},
	// pfsub
	{[4]byte{0x0F, 0x0F, 0x9A}, flags.IMM_OP, feats.TDNOW, 0<<11 | 534, 3<<4 | 15, argp_xquq},
	// pfsubr
	{[4]byte{0x0F, 0x0F, 0xAA}, flags.IMM_OP, feats.TDNOW, 0<<11 | 535, 3<<4 | 15, argp_xquq},
	// phaddd
	{[4]byte{0x0F, 0x38, 0x02}, 0, feats.MMX | feats.SSSE3, 0<<11 | 536, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x02}, flags.PREF_66, feats.SSSE3, 1<<11 | 536, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x02}, flags.PREF_66, feats.SSSE3, 2<<11 | 536, 3<<4 | 15, argp_yoyo},
	// phaddsw
	{[4]byte{0x0F, 0x38, 0x03}, 0, feats.MMX | feats.SSSE3, 0<<11 | 537, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x03}, flags.PREF_66, feats.SSSE3, 1<<11 | 537, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x03}, flags.PREF_66, feats.SSSE3, 2<<11 | 537, 3<<4 | 15, argp_yoyo},
	// phaddw
	{[4]byte{0x0F, 0x38, 0x01}, 0, feats.MMX | feats.SSSE3, 0<<11 | 538, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x01}, flags.PREF_66, feats.SSSE3, 1<<11 | 538, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x01}, flags.PREF_66, feats.SSSE3, 2<<11 | 538, 3<<4 | 15, argp_yoyo},
	// phminposuw
	{[4]byte{0x0F, 0x38, 0x41}, flags.PREF_66, feats.SSE41, 0<<11 | 539, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x41}, flags.PREF_66, feats.SSE41, 1<<11 | 539, 3<<4 | 15, argp_yoyo},
	// phsubd
	{[4]byte{0x0F, 0x38, 0x06}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 540, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x06}, flags.PREF_66, feats.SSSE3, 1<<11 | 540, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x06}, flags.PREF_66, feats.SSSE3, 2<<11 | 540, 3<<4 | 15, argp_yoyo},
	// phsubsw
	{[4]byte{0x0F, 0x38, 0x07}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 541, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x07}, flags.PREF_66, feats.SSSE3, 1<<11 | 541, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x07}, flags.PREF_66, feats.SSSE3, 2<<11 | 541, 3<<4 | 15, argp_yoyo},
	// phsubw
	{[4]byte{0x0F, 0x38, 0x05}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 542, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x05}, flags.PREF_66, feats.SSSE3, 1<<11 | 542, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x05}, flags.PREF_66, feats.SSSE3, 2<<11 | 542, 3<<4 | 15, argp_yoyo},
	// pi2fd
	{[4]byte{0x0F, 0x0F, 0x0D}, flags.IMM_OP, feats.TDNOW, 0<<11 | 543, 3<<4 | 15, argp_xquq},
	// pi2fw
	{[4]byte{0x0F, 0x0F, 0x0C}, flags.IMM_OP, feats.TDNOW, 0<<11 | 544, 3<<4 | 15, argp_xquq},
	// pinsrb
	{[4]byte{0x0F, 0x3A, 0x20}, flags.PREF_66, feats.SSE41, 0<<11 | 545, 3<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0x3A, 0x20}, flags.PREF_66, feats.SSE41, 1<<11 | 545, 3<<4 | 15, argp_yordib},
	{[4]byte{0x0F, 0x3A, 0x20}, flags.PREF_66, feats.SSE41, 2<<11 | 545, 3<<4 | 15, argp_yovbib},
	// pinsrd
	{[4]byte{0x0F, 0x3A, 0x22}, flags.PREF_66, feats.SSE41, 0<<11 | 546, 3<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0x3A, 0x22}, flags.PREF_66, feats.SSE41, 1<<11 | 546, 3<<4 | 15, argp_yovdib},
	// pinsrq
	{[4]byte{0x0F, 0x3A, 0x22}, flags.WITH_REXW | flags.PREF_66, feats.SSE41, 0<<11 | 547, 3<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0x3A, 0x22}, flags.WITH_REXW | flags.PREF_66, feats.SSE41, 1<<11 | 547, 3<<4 | 15, argp_yovqib},
	// pinsrw
	{[4]byte{0x0F, 0xC4}, 0, feats.MMX, 0<<11 | 548, 2<<4 | 15, argp_xqm1ib},
	{[4]byte{0x0F, 0xC4}, 0, feats.MMX, 1<<11 | 548, 2<<4 | 15, argp_xqrdib},
	{[4]byte{0x0F, 0xC4}, 0, feats.MMX, 2<<11 | 548, 2<<4 | 15, argp_xqvwib},
	{[4]byte{0x0F, 0xC4}, flags.PREF_66, feats.SSE2, 3<<11 | 548, 2<<4 | 15, argp_yom1ib},
	{[4]byte{0x0F, 0xC4}, flags.PREF_66, feats.SSE2, 4<<11 | 548, 2<<4 | 15, argp_yomwib},
	{[4]byte{0x0F, 0xC4}, flags.PREF_66, feats.SSE2, 5<<11 | 548, 2<<4 | 15, argp_yordib},
	{[4]byte{0x0F, 0xC4}, flags.PREF_66, feats.SSE2, 6<<11 | 548, 2<<4 | 15, argp_yorwib},
	// pmachriw
	{[4]byte{0x0F, 0x5E}, 0, feats.MMX | feats.CYRIX, 0<<11 | 549, 2<<4 | 15, argp_xqmq},
	// pmaddubsw
	{[4]byte{0x0F, 0x38, 0x04}, 0, feats.MMX | feats.SSSE3, 0<<11 | 550, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x04}, flags.PREF_66, feats.SSSE3, 1<<11 | 550, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x04}, flags.PREF_66, feats.SSSE3, 2<<11 | 550, 3<<4 | 15, argp_yoyo},
	// pmaddwd
	{[4]byte{0x0F, 0xF5}, 0, feats.MMX, 0<<11 | 551, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xF5}, flags.PREF_66, feats.SSE2, 1<<11 | 551, 2<<4 | 15, argp_yowo},
	// pmagw
	{[4]byte{0x0F, 0x52}, 0, feats.CYRIX | feats.MMX, 0<<11 | 552, 2<<4 | 15, argp_xquq},
	// pmaxsb
	{[4]byte{0x0F, 0x38, 0x3C}, flags.PREF_66, feats.SSE41, 0<<11 | 553, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3C}, flags.PREF_66, feats.SSE41, 1<<11 | 553, 3<<4 | 15, argp_yoyo},
	// pmaxsd
	{[4]byte{0x0F, 0x38, 0x3D}, flags.PREF_66, feats.SSE41, 0<<11 | 554, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3D}, flags.PREF_66, feats.SSE41, 1<<11 | 554, 3<<4 | 15, argp_yoyo},
	// pmaxsw
	{[4]byte{0x0F, 0xEE}, 0, feats.MMX, 0<<11 | 555, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xEE}, flags.PREF_66, feats.SSE2, 1<<11 | 555, 2<<4 | 15, argp_yowo},
	// pmaxub
	{[4]byte{0x0F, 0xDE}, 0, feats.MMX, 0<<11 | 556, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDE}, flags.PREF_66, feats.SSE2, 1<<11 | 556, 2<<4 | 15, argp_yowo},
	// pmaxud
	{[4]byte{0x0F, 0x38, 0x3F}, flags.PREF_66, feats.SSE41, 0<<11 | 557, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3F}, flags.PREF_66, feats.SSE41, 1<<11 | 557, 3<<4 | 15, argp_yoyo},
	// pmaxuw
	{[4]byte{0x0F, 0x38, 0x3E}, flags.PREF_66, feats.SSE41, 0<<11 | 558, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3E}, flags.PREF_66, feats.SSE41, 1<<11 | 558, 3<<4 | 15, argp_yoyo},
	// pminsb
	{[4]byte{0x0F, 0x38, 0x38}, flags.PREF_66, feats.SSE41, 0<<11 | 559, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x38}, flags.PREF_66, feats.SSE41, 1<<11 | 559, 3<<4 | 15, argp_yoyo},
	// pminsd
	{[4]byte{0x0F, 0x38, 0x39}, flags.PREF_66, feats.SSE41, 0<<11 | 560, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x39}, flags.PREF_66, feats.SSE41, 1<<11 | 560, 3<<4 | 15, argp_yoyo},
	// pminsw
	{[4]byte{0x0F, 0xEA}, 0, feats.MMX, 0<<11 | 561, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xEA}, flags.PREF_66, feats.SSE2, 1<<11 | 561, 2<<4 | 15, argp_yowo},
	// pminub
	{[4]byte{0x0F, 0xDA}, 0, feats.MMX, 0<<11 | 562, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xDA}, flags.PREF_66, feats.SSE2, 1<<11 | 562, 2<<4 | 15, argp_yowo},
	// pminud
	{[4]byte{0x0F, 0x38, 0x3B}, flags.PREF_66, feats.SSE41, 0<<11 | 563, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3B}, flags.PREF_66, feats.SSE41, 1<<11 | 563, 3<<4 | 15, argp_yoyo},
	// pminuw
	{[4]byte{0x0F, 0x38, 0x3A}, flags.PREF_66, feats.SSE41, 0<<11 | 564, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x3A}, flags.PREF_66, feats.SSE41, 1<<11 | 564, 3<<4 | 15, argp_yoyo},
	// pmovmskb
	{[4]byte{0x0F, 0xD7}, 0, feats.MMX, 0<<11 | 565, 2<<4 | 15, argp_rdxq},
	{[4]byte{0x0F, 0xD7}, flags.PREF_66, feats.SSE2, 1<<11 | 565, 2<<4 | 15, argp_rdyo},
	// pmovsxbd
	{[4]byte{0x0F, 0x38, 0x21}, flags.PREF_66, feats.SSE41, 0<<11 | 566, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x38, 0x21}, flags.PREF_66, feats.SSE41, 1<<11 | 566, 3<<4 | 15, argp_yoyo},
	// pmovsxbq
	{[4]byte{0x0F, 0x38, 0x22}, flags.PREF_66, feats.SSE41, 0<<11 | 567, 3<<4 | 15, argp_yomw},
	{[4]byte{0x0F, 0x38, 0x22}, flags.PREF_66, feats.SSE41, 1<<11 | 567, 3<<4 | 15, argp_yoyo},
	// pmovsxbw
	{[4]byte{0x0F, 0x38, 0x20}, flags.PREF_66, feats.SSE41, 0<<11 | 568, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x20}, flags.PREF_66, feats.SSE41, 1<<11 | 568, 3<<4 | 15, argp_yoyo},
	// pmovsxdq
	{[4]byte{0x0F, 0x38, 0x25}, flags.PREF_66, feats.SSE41, 0<<11 | 569, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x25}, flags.PREF_66, feats.SSE41, 1<<11 | 569, 3<<4 | 15, argp_yoyo},
	// pmovsxwd
	{[4]byte{0x0F, 0x38, 0x23}, flags.PREF_66, feats.SSE41, 0<<11 | 570, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x23}, flags.PREF_66, feats.SSE41, 1<<11 | 570, 3<<4 | 15, argp_yoyo},
	// pmovsxwq
	{[4]byte{0x0F, 0x38, 0x24}, flags.PREF_66, feats.SSE41, 0<<11 | 571, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x38, 0x24}, flags.PREF_66, feats.SSE41, 1<<11 | 571, 3<<4 | 15, argp_yoyo},
	// pmovzxbd
	{[4]byte{0x0F, 0x38, 0x31}, flags.PREF_66, feats.SSE41, 0<<11 | 572, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x38, 0x31}, flags.PREF_66, feats.SSE41, 1<<11 | 572, 3<<4 | 15, argp_yoyo},
	// pmovzxbq
	{[4]byte{0x0F, 0x38, 0x32}, flags.PREF_66, feats.SSE41, 0<<11 | 573, 3<<4 | 15, argp_yomw},
	{[4]byte{0x0F, 0x38, 0x32}, flags.PREF_66, feats.SSE41, 1<<11 | 573, 3<<4 | 15, argp_yoyo},
	// pmovzxbw
	{[4]byte{0x0F, 0x38, 0x30}, flags.PREF_66, feats.SSE41, 0<<11 | 574, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x30}, flags.PREF_66, feats.SSE41, 1<<11 | 574, 3<<4 | 15, argp_yoyo},
	// pmovzxdq
	{[4]byte{0x0F, 0x38, 0x35}, flags.PREF_66, feats.SSE41, 0<<11 | 575, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x35}, flags.PREF_66, feats.SSE41, 1<<11 | 575, 3<<4 | 15, argp_yoyo},
	// pmovzxwd
	{[4]byte{0x0F, 0x38, 0x33}, flags.PREF_66, feats.SSE41, 0<<11 | 576, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x33}, flags.PREF_66, feats.SSE41, 1<<11 | 576, 3<<4 | 15, argp_yoyo},
	// pmovzxwq
	{[4]byte{0x0F, 0x38, 0x34}, flags.PREF_66, feats.SSE41, 0<<11 | 577, 3<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x38, 0x34}, flags.PREF_66, feats.SSE41, 1<<11 | 577, 3<<4 | 15, argp_yoyo},
	// pmuldq
	{[4]byte{0x0F, 0x38, 0x28}, flags.PREF_66, feats.SSE41, 0<<11 | 578, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x28}, flags.PREF_66, feats.SSE41, 1<<11 | 578, 3<<4 | 15, argp_yoyo},
	// pmulhriw
	{[4]byte{0x0F, 0x5D}, 0, feats.CYRIX | feats.MMX, 0<<11 | 579, 2<<4 | 15, argp_xquq},
	// pmulhrsw
	{[4]byte{0x0F, 0x38, 0x0B}, 0, feats.MMX | feats.SSSE3, 0<<11 | 580, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x0B}, flags.PREF_66, feats.SSSE3, 1<<11 | 580, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x0B}, flags.PREF_66, feats.SSSE3, 2<<11 | 580, 3<<4 | 15, argp_yoyo},
	// pmulhrwa
	{[4]byte{0x0F, 0x0F, 0xB7}, flags.IMM_OP, feats.TDNOW, 0<<11 | 581, 3<<4 | 15, argp_xquq},
	// pmulhrwc
	{[4]byte{0x0F, 0x59}, 0, feats.MMX | feats.CYRIX, 0<<11 | 582, 2<<4 | 15, argp_xquq},
	// pmulhuw
	{[4]byte{0x0F, 0xE4}, 0, feats.MMX, 0<<11 | 583, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE4}, flags.PREF_66, feats.SSE2, 1<<11 | 583, 2<<4 | 15, argp_yowo},
	// pmulhw
	{[4]byte{0x0F, 0xE5}, 0, feats.MMX, 0<<11 | 584, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE5}, flags.PREF_66, feats.SSE2, 1<<11 | 584, 2<<4 | 15, argp_yowo},
	// pmulld
	{[4]byte{0x0F, 0x38, 0x40}, flags.PREF_66, feats.SSE41, 0<<11 | 585, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x40}, flags.PREF_66, feats.SSE41, 1<<11 | 585, 3<<4 | 15, argp_yoyo},
	// pmullw
	{[4]byte{0x0F, 0xD5}, 0, feats.MMX, 0<<11 | 586, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xD5}, flags.PREF_66, feats.SSE2, 1<<11 | 586, 2<<4 | 15, argp_yowo},
	// pmuludq
	{[4]byte{0x0F, 0xF4}, 0, feats.SSE2, 0<<11 | 587, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xF4}, flags.PREF_66, feats.SSE2, 1<<11 | 587, 2<<4 | 15, argp_yowo},
	// pmvgezb
	{[4]byte{0x0F, 0x5C}, 0, feats.CYRIX | feats.MMX, 0<<11 | 588, 2<<4 | 15, argp_xqmq},
	// pmvlzb
	{[4]byte{0x0F, 0x5B}, 0, feats.CYRIX | feats.MMX, 0<<11 | 589, 2<<4 | 15, argp_xqmq},
	// pmvnzb
	{[4]byte{0x0F, 0x5A}, 0, feats.CYRIX | feats.MMX, 0<<11 | 590, 2<<4 | 15, argp_xqmq},
	// pmvzb
	{[4]byte{0x0F, 0x58}, 0, feats.MMX | feats.CYRIX, 0<<11 | 591, 2<<4 | 15, argp_xqmq},
	// pop
	{[4]byte{0x07}, flags.X86_ONLY, 0, 0<<11 | 592, 1<<4 | 15, argp_Qw},
	{[4]byte{0x17}, flags.X86_ONLY, 0, 1<<11 | 592, 1<<4 | 15, argp_Sw},
	{[4]byte{0x1F}, flags.X86_ONLY, 0, 2<<11 | 592, 1<<4 | 15, argp_Tw},
	{[4]byte{0x0F, 0xA1}, 0, 0, 3<<11 | 592, 2<<4 | 15, argp_Uw},
	{[4]byte{0x0F, 0xA9}, 0, 0, 4<<11 | 592, 2<<4 | 15, argp_Vw},
	{[4]byte{0x58}, flags.AUTO_NO32 | flags.SHORT_ARG, 0, 5<<11 | 592, 1<<4 | 15, argp_r0},
	{[4]byte{0x8F}, flags.AUTO_NO32, 0, 6<<11 | 592, 1<<4 | 0, argp_v0},
	// popa
	{[4]byte{0x61}, flags.X86_ONLY | flags.WORD_SIZE, 0, 0<<11 | 593, 1<<4 | 15, argp_},
	// popad
	{[4]byte{0x61}, flags.X86_ONLY, 0, 0<<11 | 594, 1<<4 | 15, argp_},
	// popcnt
	{[4]byte{0x0F, 0xB8}, flags.AUTO_SIZE | flags.PREF_F3, 0, 0<<11 | 595, 2<<4 | 15, argp_r0v0},
	// popf
	{[4]byte{0x9D}, 0, 0, 0<<11 | 596, 1<<4 | 15, argp_},
	// popfq
	{[4]byte{0x9D}, 0, 0, 0<<11 | 597, 1<<4 | 15, argp_},
	// popfw
	{[4]byte{0x9D}, flags.WORD_SIZE, 0, 0<<11 | 598, 1<<4 | 15, argp_},
	// por
	{[4]byte{0x0F, 0xEB}, 0, feats.MMX, 0<<11 | 599, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xEB}, flags.PREF_66, feats.SSE2, 1<<11 | 599, 2<<4 | 15, argp_yowo},
	// prefetch
	{[4]byte{0x0F, 0x0D}, 0, feats.TDNOW, 0<<11 | 600, 2<<4 | 0, argp_mq},
	// prefetchnta
	{[4]byte{0x0F, 0x18}, 0, 0, 0<<11 | 601, 2<<4 | 0, argp_mb},
	// prefetcht0
	{[4]byte{0x0F, 0x18}, 0, 0, 0<<11 | 602, 2<<4 | 1, argp_mb},
	// prefetcht1
	{[4]byte{0x0F, 0x18}, 0, 0, 0<<11 | 603, 2<<4 | 2, argp_mb},
	// prefetcht2
	{[4]byte{0x0F, 0x18}, 0, 0, 0<<11 | 604, 2<<4 | 3, argp_mb},
	// prefetchw
	{[4]byte{0x0F, 0x0D}, 0, feats.TDNOW, 0<<11 | 605, 2<<4 | 1, argp_mq},
	// prefetchwt1
	{[4]byte{0x0F, 0x0D}, 0, feats.PREFETCHWT1, 0<<11 | 606, 2<<4 | 2, argp_mb},
	// psadbw
	{[4]byte{0x0F, 0xF6}, 0, feats.MMX, 0<<11 | 607, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xF6}, flags.PREF_66, feats.SSE2, 1<<11 | 607, 2<<4 | 15, argp_yowo},
	// pshufb
	{[4]byte{0x0F, 0x38, 0x00}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 608, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x00}, flags.PREF_66, feats.SSSE3, 1<<11 | 608, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x00}, flags.PREF_66, feats.SSSE3, 2<<11 | 608, 3<<4 | 15, argp_yoyo},
	// pshufd
	{[4]byte{0x0F, 0x70}, flags.PREF_66, feats.SSE2, 0<<11 | 609, 2<<4 | 15, argp_yowoib},
	// pshufhw
	{[4]byte{0x0F, 0x70}, flags.PREF_F3, feats.SSE2, 0<<11 | 610, 2<<4 | 15, argp_yowoib},
	// pshuflw
	{[4]byte{0x0F, 0x70}, flags.PREF_F2, feats.SSE2, 0<<11 | 611, 2<<4 | 15, argp_yowoib},
	// pshufw
	{[4]byte{0x0F, 0x70}, 0, feats.MMX, 0<<11 | 612, 2<<4 | 15, argp_xquqib},
	// psignb
	{[4]byte{0x0F, 0x38, 0x08}, 0, feats.MMX | feats.SSSE3, 0<<11 | 613, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x08}, flags.PREF_66, feats.SSSE3, 1<<11 | 613, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x08}, flags.PREF_66, feats.SSSE3, 2<<11 | 613, 3<<4 | 15, argp_yoyo},
	// psignd
	{[4]byte{0x0F, 0x38, 0x0A}, 0, feats.SSSE3 | feats.MMX, 0<<11 | 614, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x0A}, flags.PREF_66, feats.SSSE3, 1<<11 | 614, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x0A}, flags.PREF_66, feats.SSSE3, 2<<11 | 614, 3<<4 | 15, argp_yoyo},
	// psignw
	{[4]byte{0x0F, 0x38, 0x09}, 0, feats.MMX | feats.SSSE3, 0<<11 | 615, 3<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x38, 0x09}, flags.PREF_66, feats.SSSE3, 1<<11 | 615, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x09}, flags.PREF_66, feats.SSSE3, 2<<11 | 615, 3<<4 | 15, argp_yoyo},
	// pslld
	{[4]byte{0x0F, 0x72}, 0, feats.MMX, 0<<11 | 616, 2<<4 | 6, argp_xqib},
	{[4]byte{0x0F, 0xF2}, 0, feats.MMX, 1<<11 | 616, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x72}, flags.PREF_66, feats.SSE2, 2<<11 | 616, 2<<4 | 6, argp_yoib},
	{[4]byte{0x0F, 0xF2}, flags.PREF_66, feats.SSE2, 3<<11 | 616, 2<<4 | 15, argp_yowo},
	// pslldq
	{[4]byte{0x0F, 0x73}, flags.PREF_66, feats.SSE2, 0<<11 | 617, 2<<4 | 7, argp_yoib},
	// psllq
	{[4]byte{0x0F, 0x73}, 0, feats.MMX, 0<<11 | 618, 2<<4 | 6, argp_xqib},
	{[4]byte{0x0F, 0xF3}, 0, feats.MMX, 1<<11 | 618, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x73}, flags.PREF_66, feats.SSE2, 2<<11 | 618, 2<<4 | 6, argp_yoib},
	{[4]byte{0x0F, 0xF3}, flags.PREF_66, feats.SSE2, 3<<11 | 618, 2<<4 | 15, argp_yowo},
	// psllw
	{[4]byte{0x0F, 0x71}, 0, feats.MMX, 0<<11 | 619, 2<<4 | 6, argp_xqib},
	{[4]byte{0x0F, 0xF1}, 0, feats.MMX, 1<<11 | 619, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x71}, flags.PREF_66, feats.SSE2, 2<<11 | 619, 2<<4 | 6, argp_yoib},
	{[4]byte{0x0F, 0xF1}, flags.PREF_66, feats.SSE2, 3<<11 | 619, 2<<4 | 15, argp_yowo},
	// psrad
	{[4]byte{0x0F, 0x72}, 0, feats.MMX, 0<<11 | 620, 2<<4 | 4, argp_xqib},
	{[4]byte{0x0F, 0xE2}, 0, feats.MMX, 1<<11 | 620, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x72}, flags.PREF_66, feats.SSE2, 2<<11 | 620, 2<<4 | 4, argp_yoib},
	{[4]byte{0x0F, 0xE2}, flags.PREF_66, feats.SSE2, 3<<11 | 620, 2<<4 | 15, argp_yowo},
	// psraw
	{[4]byte{0x0F, 0x71}, 0, feats.MMX, 0<<11 | 621, 2<<4 | 4, argp_xqib},
	{[4]byte{0x0F, 0xE1}, 0, feats.MMX, 1<<11 | 621, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x71}, flags.PREF_66, feats.SSE2, 2<<11 | 621, 2<<4 | 4, argp_yoib},
	{[4]byte{0x0F, 0xE1}, flags.PREF_66, feats.SSE2, 3<<11 | 621, 2<<4 | 15, argp_yowo},
	// psrld
	{[4]byte{0x0F, 0x72}, 0, feats.MMX, 0<<11 | 622, 2<<4 | 2, argp_xqib},
	{[4]byte{0x0F, 0xD2}, 0, feats.MMX, 1<<11 | 622, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x72}, flags.PREF_66, feats.SSE2, 2<<11 | 622, 2<<4 | 2, argp_yoib},
	{[4]byte{0x0F, 0xD2}, flags.PREF_66, feats.SSE2, 3<<11 | 622, 2<<4 | 15, argp_yowo},
	// psrldq
	{[4]byte{0x0F, 0x73}, flags.PREF_66, feats.SSE2, 0<<11 | 623, 2<<4 | 3, argp_yoib},
	// psrlq
	{[4]byte{0x0F, 0x73}, 0, feats.MMX, 0<<11 | 624, 2<<4 | 2, argp_xqib},
	{[4]byte{0x0F, 0xD3}, 0, feats.MMX, 1<<11 | 624, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x73}, flags.PREF_66, feats.SSE2, 2<<11 | 624, 2<<4 | 2, argp_yoib},
	{[4]byte{0x0F, 0xD3}, flags.PREF_66, feats.SSE2, 3<<11 | 624, 2<<4 | 15, argp_yowo},
	// psrlw
	{[4]byte{0x0F, 0x71}, 0, feats.MMX, 0<<11 | 625, 2<<4 | 2, argp_xqib},
	{[4]byte{0x0F, 0xD1}, 0, feats.MMX, 1<<11 | 625, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x71}, flags.PREF_66, feats.SSE2, 2<<11 | 625, 2<<4 | 2, argp_yoib},
	{[4]byte{0x0F, 0xD1}, flags.PREF_66, feats.SSE2, 3<<11 | 625, 2<<4 | 15, argp_yowo},
	// psubb
	{[4]byte{0x0F, 0xF8}, 0, feats.MMX, 0<<11 | 626, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xF8}, flags.PREF_66, feats.SSE2, 1<<11 | 626, 2<<4 | 15, argp_yowo},
	// psubd
	{[4]byte{0x0F, 0xFA}, 0, feats.MMX, 0<<11 | 627, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xFA}, flags.PREF_66, feats.SSE2, 1<<11 | 627, 2<<4 | 15, argp_yowo},
	// psubq
	{[4]byte{0x0F, 0xFB}, 0, feats.SSE2, 0<<11 | 628, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xFB}, flags.PREF_66, feats.SSE2, 1<<11 | 628, 2<<4 | 15, argp_yowo},
	// psubsb
	{[4]byte{0x0F, 0xE8}, 0, feats.MMX, 0<<11 | 629, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE8}, flags.PREF_66, feats.SSE2, 1<<11 | 629, 2<<4 | 15, argp_yowo},
	// psubsiw
	{[4]byte{0x0F, 0x55}, 0, feats.CYRIX | feats.MMX, 0<<11 | 630, 2<<4 | 15, argp_xquq},
	// psubsw
	{[4]byte{0x0F, 0xE9}, 0, feats.MMX, 0<<11 | 631, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xE9}, flags.PREF_66, feats.SSE2, 1<<11 | 631, 2<<4 | 15, argp_yowo},
	// psubusb
	{[4]byte{0x0F, 0xD8}, 0, feats.MMX, 0<<11 | 632, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xD8}, flags.PREF_66, feats.SSE2, 1<<11 | 632, 2<<4 | 15, argp_yowo},
	// psubusw
	{[4]byte{0x0F, 0xD9}, 0, feats.MMX, 0<<11 | 633, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xD9}, flags.PREF_66, feats.SSE2, 1<<11 | 633, 2<<4 | 15, argp_yowo},
	// psubw
	{[4]byte{0x0F, 0xF9}, 0, feats.MMX, 0<<11 | 634, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xF9}, flags.PREF_66, feats.SSE2, 1<<11 | 634, 2<<4 | 15, argp_yowo},
	// pswapd
	{[4]byte{0x0F, 0x0F, 0xBB}, flags.IMM_OP, feats.TDNOW, 0<<11 | 635, 3<<4 | 15, argp_xquq},
	// ptest
	{[4]byte{0x0F, 0x38, 0x17}, flags.PREF_66, feats.SSE41, 0<<11 | 636, 3<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x38, 0x17}, flags.PREF_66, feats.SSE41, 1<<11 | 636, 3<<4 | 15, argp_yoyo},
	// punpckhbw
	{[4]byte{0x0F, 0x68}, 0, feats.MMX, 0<<11 | 637, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x68}, flags.PREF_66, feats.SSE2, 1<<11 | 637, 2<<4 | 15, argp_yowo},
	// punpckhdq
	{[4]byte{0x0F, 0x6A}, 0, feats.MMX, 0<<11 | 638, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x6A}, flags.PREF_66, feats.SSE2, 1<<11 | 638, 2<<4 | 15, argp_yowo},
	// punpckhqdq
	{[4]byte{0x0F, 0x6D}, flags.PREF_66, feats.SSE2, 0<<11 | 639, 2<<4 | 15, argp_yowo},
	// punpckhwd
	{[4]byte{0x0F, 0x69}, 0, feats.MMX, 0<<11 | 640, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x69}, flags.PREF_66, feats.SSE2, 1<<11 | 640, 2<<4 | 15, argp_yowo},
	// punpcklbw
	{[4]byte{0x0F, 0x60}, 0, feats.MMX, 0<<11 | 641, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x60}, flags.PREF_66, feats.SSE2, 1<<11 | 641, 2<<4 | 15, argp_yowo},
	// punpckldq
	{[4]byte{0x0F, 0x62}, 0, feats.MMX, 0<<11 | 642, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x62}, flags.PREF_66, feats.SSE2, 1<<11 | 642, 2<<4 | 15, argp_yowo},
	// punpcklqdq
	{[4]byte{0x0F, 0x6C}, flags.PREF_66, feats.SSE2, 0<<11 | 643, 2<<4 | 15, argp_yowo},
	// punpcklwd
	{[4]byte{0x0F, 0x61}, 0, feats.MMX, 0<<11 | 644, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0x61}, flags.PREF_66, feats.SSE2, 1<<11 | 644, 2<<4 | 15, argp_yowo},
	// push
	{[4]byte{0x06}, flags.X86_ONLY, 0, 0<<11 | 645, 1<<4 | 15, argp_Qw},
	{[4]byte{0x0E}, flags.X86_ONLY, 0, 1<<11 | 645, 1<<4 | 15, argp_Rw},
	{[4]byte{0x16}, flags.X86_ONLY, 0, 2<<11 | 645, 1<<4 | 15, argp_Sw},
	{[4]byte{0x1E}, flags.X86_ONLY, 0, 3<<11 | 645, 1<<4 | 15, argp_Tw},
	{[4]byte{0x0F, 0xA0}, 0, 0, 4<<11 | 645, 2<<4 | 15, argp_Uw},
	{[4]byte{0x0F, 0xA8}, 0, 0, 5<<11 | 645, 2<<4 | 15, argp_Vw},
	{[4]byte{0x6A}, flags.EXACT_SIZE, 0, 6<<11 | 645, 1<<4 | 15, argp_ib},
	{[4]byte{0x68}, flags.EXACT_SIZE | flags.WORD_SIZE, 0, 7<<11 | 645, 1<<4 | 15, argp_iw},
	{[4]byte{0x68}, 0, 0, 8<<11 | 645, 1<<4 | 15, argp_id},
	{[4]byte{0x50}, flags.AUTO_NO32 | flags.SHORT_ARG, 0, 9<<11 | 645, 1<<4 | 15, argp_r0},
	{[4]byte{0xFF}, flags.AUTO_NO32, 0, 10<<11 | 645, 1<<4 | 6, argp_v0},
	// pusha
	{[4]byte{0x60}, flags.X86_ONLY | flags.WORD_SIZE, 0, 0<<11 | 646, 1<<4 | 15, argp_},
	// pushad
	{[4]byte{0x60}, flags.X86_ONLY, 0, 0<<11 | 647, 1<<4 | 15, argp_},
	// pushf
	{[4]byte{0x9C}, 0, 0, 0<<11 | 648, 1<<4 | 15, argp_},
	// pushfq
	{[4]byte{0x9C}, 0, 0, 0<<11 | 649, 1<<4 | 15, argp_},
	// pushfw
	{[4]byte{0x9C}, flags.WORD_SIZE, 0, 0<<11 | 650, 1<<4 | 15, argp_},
	// pxor
	{[4]byte{0x0F, 0xEF}, 0, feats.MMX, 0<<11 | 651, 2<<4 | 15, argp_xquq},
	{[4]byte{0x0F, 0xEF}, flags.PREF_66, feats.SSE2, 1<<11 | 651, 2<<4 | 15, argp_yowo},
	// rcl
	{[4]byte{0xD2}, 0, 0, 0<<11 | 652, 1<<4 | 2, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 652, 1<<4 | 2, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 652, 1<<4 | 2, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 652, 1<<4 | 2, argp_v0ib},
	// rcpps
	{[4]byte{0x0F, 0x53}, 0, feats.SSE, 0<<11 | 653, 2<<4 | 15, argp_yowo},
	// rcpss
	{[4]byte{0x0F, 0x53}, flags.PREF_F3, feats.SSE, 0<<11 | 654, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x53}, flags.PREF_F3, feats.SSE, 1<<11 | 654, 2<<4 | 15, argp_yoyo},
	// rcr
	{[4]byte{0xD2}, 0, 0, 0<<11 | 655, 1<<4 | 3, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 655, 1<<4 | 3, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 655, 1<<4 | 3, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 655, 1<<4 | 3, argp_v0ib},
	// rdfsbase
	{[4]byte{0x0F, 0xAE}, flags.PREF_F3, 0, 0<<11 | 656, 2<<4 | 0, argp_rd},
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW | flags.PREF_F3, 0, 1<<11 | 656, 2<<4 | 0, argp_rq},
	// rdgsbase
	{[4]byte{0x0F, 0xAE}, flags.PREF_F3, 0, 0<<11 | 657, 2<<4 | 1, argp_rd},
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW | flags.PREF_F3, 0, 1<<11 | 657, 2<<4 | 1, argp_rq},
	// rdm
	{[4]byte{0x0F, 0x3A}, 0, feats.CYRIX, 0<<11 | 658, 2<<4 | 15, argp_},
	// rdmsr
	{[4]byte{0x0F, 0x32}, 0, 0, 0<<11 | 659, 2<<4 | 15, argp_},
	// rdpid
	{[4]byte{0x0F, 0xC7}, flags.PREF_F3, 0, 0<<11 | 660, 2<<4 | 7, argp_rq},
	// rdpkru
	{[4]byte{0x0F, 0x01, 0xEE}, 0, 0, 0<<11 | 661, 3<<4 | 15, argp_},
	// rdpmc
	{[4]byte{0x0F, 0x33}, 0, 0, 0<<11 | 662, 2<<4 | 15, argp_},
	// rdrand
	{[4]byte{0x0F, 0xC7}, flags.WITH_REXW, 0, 0<<11 | 663, 2<<4 | 6, argp_rq},
	// rdseed
	{[4]byte{0x0F, 0xC7}, flags.WITH_REXW, 0, 0<<11 | 664, 2<<4 | 7, argp_rq},
	// rdshr
	{[4]byte{0x0F, 0x36}, 0, feats.CYRIX, 0<<11 | 665, 2<<4 | 0, argp_vd},
	// rdtsc
	{[4]byte{0x0F, 0x31}, 0, 0, 0<<11 | 666, 2<<4 | 15, argp_},
	// rdtscp
	{[4]byte{0x0F, 0x01, 0xF9}, 0, 0, 0<<11 | 667, 3<<4 | 15, argp_},
	// ret
	{[4]byte{0xC3}, 0, 0, 0<<11 | 668, 1<<4 | 15, argp_},
	{[4]byte{0xC2}, 0, 0, 1<<11 | 668, 1<<4 | 15, argp_iw},
	// retf
	{[4]byte{0xCB}, 0, 0, 0<<11 | 669, 1<<4 | 15, argp_},
	{[4]byte{0xCA}, 0, 0, 1<<11 | 669, 1<<4 | 15, argp_iw},
	// retn
	{[4]byte{0xC3}, 0, 0, 0<<11 | 670, 1<<4 | 15, argp_},
	{[4]byte{0xC2}, 0, 0, 1<<11 | 670, 1<<4 | 15, argp_iw},
	// rol
	{[4]byte{0xD2}, 0, 0, 0<<11 | 671, 1<<4 | 0, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 671, 1<<4 | 0, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 671, 1<<4 | 0, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 671, 1<<4 | 0, argp_v0ib},
	// ror
	{[4]byte{0xD2}, 0, 0, 0<<11 | 672, 1<<4 | 1, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 672, 1<<4 | 1, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 672, 1<<4 | 1, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 672, 1<<4 | 1, argp_v0ib},
	// rorx
	{[4]byte{0x03, 0xF0}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.BMI2, 0<<11 | 673, 2<<4 | 15, argp_r0v0ib},
	// roundpd
	{[4]byte{0x0F, 0x3A, 0x09}, flags.PREF_66, feats.SSE41, 0<<11 | 674, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x09}, flags.PREF_66, feats.SSE41, 1<<11 | 674, 3<<4 | 15, argp_yoyoib},
	// roundps
	{[4]byte{0x0F, 0x3A, 0x08}, flags.PREF_66, feats.SSE41, 0<<11 | 675, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x08}, flags.PREF_66, feats.SSE41, 1<<11 | 675, 3<<4 | 15, argp_yoyoib},
	// roundsd
	{[4]byte{0x0F, 0x3A, 0x0B}, flags.PREF_66, feats.SSE41, 0<<11 | 676, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0B}, flags.PREF_66, feats.SSE41, 1<<11 | 676, 3<<4 | 15, argp_yoyoib},
	// roundss
	{[4]byte{0x0F, 0x3A, 0x0A}, flags.PREF_66, feats.SSE41, 0<<11 | 677, 3<<4 | 15, argp_yomqib},
	{[4]byte{0x0F, 0x3A, 0x0A}, flags.PREF_66, feats.SSE41, 1<<11 | 677, 3<<4 | 15, argp_yoyoib},
	// rsdc
	{[4]byte{0x0F, 0x79}, flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 678, 2<<4 | 15, argp_swmp},
	// rsldt
	{[4]byte{0x0F, 0x7B}, flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 679, 2<<4 | 0, argp_mp},
	// rsm
	{[4]byte{0x0F, 0xAA}, 0, 0, 0<<11 | 680, 2<<4 | 15, argp_},
	// rsqrtps
	{[4]byte{0x0F, 0x52}, 0, feats.SSE, 0<<11 | 681, 2<<4 | 15, argp_yowo},
	// rsqrtss
	{[4]byte{0x0F, 0x52}, flags.PREF_F3, feats.SSE, 0<<11 | 682, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x52}, flags.PREF_F3, feats.SSE, 1<<11 | 682, 2<<4 | 15, argp_yoyo},
	// rsts
	{[4]byte{0x0F, 0x7D}, flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 683, 2<<4 | 0, argp_mp},
	// sahf
	{[4]byte{0x9E}, 0, 0, 0<<11 | 684, 1<<4 | 15, argp_},
	// sal
	{[4]byte{0xD2}, 0, 0, 0<<11 | 685, 1<<4 | 4, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 685, 1<<4 | 4, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 685, 1<<4 | 4, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 685, 1<<4 | 4, argp_v0ib},
	// sar
	{[4]byte{0xD2}, 0, 0, 0<<11 | 686, 1<<4 | 7, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 686, 1<<4 | 7, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 686, 1<<4 | 7, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 686, 1<<4 | 7, argp_v0ib},
	// sarx
	{[4]byte{0x02, 0xF7}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_MR | flags.PREF_F3, feats.BMI2, 0<<11 | 687, 2<<4 | 15, argp_r0v0r0},
	// sbb
	{[4]byte{0x1C}, 0, 0, 0<<11 | 688, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 688, 1<<4 | 3, argp_mbib},
	{[4]byte{0x18}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 688, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 688, 1<<4 | 3, argp_rbib},
	{[4]byte{0x18}, flags.ENC_MR, 0, 4<<11 | 688, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x1A}, 0, 0, 5<<11 | 688, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 688, 1<<4 | 3, argp_r0ib},
	{[4]byte{0x1D}, flags.AUTO_SIZE, 0, 7<<11 | 688, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 688, 1<<4 | 3, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 688, 1<<4 | 3, argp_m0ib},
	{[4]byte{0x19}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 688, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 688, 1<<4 | 3, argp_r0i0},
	{[4]byte{0x19}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 688, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x1B}, flags.AUTO_SIZE, 0, 13<<11 | 688, 1<<4 | 15, argp_r0v0},
	// scasb
	{[4]byte{0xAE}, flags.REPE, 0, 0<<11 | 689, 1<<4 | 15, argp_},
	// scasd
	{[4]byte{0xAF}, flags.REPE, 0, 0<<11 | 690, 1<<4 | 15, argp_},
	// scasq
	{[4]byte{0xAF}, flags.REPE | flags.WITH_REXW, 0, 0<<11 | 691, 1<<4 | 15, argp_},
	// scasw
	{[4]byte{0xAF}, flags.REPE | flags.WORD_SIZE, 0, 0<<11 | 692, 1<<4 | 15, argp_},
	// seta
	{[4]byte{0x0F, 0x97}, 0, 0, 0<<11 | 693, 2<<4 | 0, argp_vb},
	// setae
	{[4]byte{0x0F, 0x93}, 0, 0, 0<<11 | 694, 2<<4 | 0, argp_vb},
	// setb
	{[4]byte{0x0F, 0x92}, 0, 0, 0<<11 | 695, 2<<4 | 0, argp_vb},
	// setbe
	{[4]byte{0x0F, 0x96}, 0, 0, 0<<11 | 696, 2<<4 | 0, argp_vb},
	// setc
	{[4]byte{0x0F, 0x92}, 0, 0, 0<<11 | 697, 2<<4 | 0, argp_vb},
	// sete
	{[4]byte{0x0F, 0x94}, 0, 0, 0<<11 | 698, 2<<4 | 0, argp_vb},
	// setg
	{[4]byte{0x0F, 0x9F}, 0, 0, 0<<11 | 699, 2<<4 | 0, argp_vb},
	// setge
	{[4]byte{0x0F, 0x9D}, 0, 0, 0<<11 | 700, 2<<4 | 0, argp_vb},
	// setl
	{[4]byte{0x0F, 0x9C}, 0, 0, 0<<11 | 701, 2<<4 | 0, argp_vb},
	// setle
	{[4]byte{0x0F, 0x9E}, 0, 0, 0<<11 | 702, 2<<4 | 0, argp_vb},
	// setna
	{[4]byte{0x0F, 0x96}, 0, 0, 0<<11 | 703, 2<<4 | 0, argp_vb},
	// setnae
	{[4]byte{0x0F, 0x92}, 0, 0, 0<<11 | 704, 2<<4 | 0, argp_vb},
	// setnb
	{[4]byte{0x0F, 0x93}, 0, 0, 0<<11 | 705, 2<<4 | 0, argp_vb},
	// setnbe
	{[4]byte{0x0F, 0x97}, 0, 0, 0<<11 | 706, 2<<4 | 0, argp_vb},
	// setnc
	{[4]byte{0x0F, 0x93}, 0, 0, 0<<11 | 707, 2<<4 | 0, argp_vb},
	// setne
	{[4]byte{0x0F, 0x95}, 0, 0, 0<<11 | 708, 2<<4 | 0, argp_vb},
	// setng
	{[4]byte{0x0F, 0x9E}, 0, 0, 0<<11 | 709, 2<<4 | 0, argp_vb},
	// setnge
	{[4]byte{0x0F, 0x9C}, 0, 0, 0<<11 | 710, 2<<4 | 0, argp_vb},
	// setnl
	{[4]byte{0x0F, 0x9D}, 0, 0, 0<<11 | 711, 2<<4 | 0, argp_vb},
	// setnle
	{[4]byte{0x0F, 0x9F}, 0, 0, 0<<11 | 712, 2<<4 | 0, argp_vb},
	// setno
	{[4]byte{0x0F, 0x91}, 0, 0, 0<<11 | 713, 2<<4 | 0, argp_vb},
	// setnp
	{[4]byte{0x0F, 0x9B}, 0, 0, 0<<11 | 714, 2<<4 | 0, argp_vb},
	// setns
	{[4]byte{0x0F, 0x99}, 0, 0, 0<<11 | 715, 2<<4 | 0, argp_vb},
	// setnz
	{[4]byte{0x0F, 0x95}, 0, 0, 0<<11 | 716, 2<<4 | 0, argp_vb},
	// seto
	{[4]byte{0x0F, 0x90}, 0, 0, 0<<11 | 717, 2<<4 | 0, argp_vb},
	// setp
	{[4]byte{0x0F, 0x9A}, 0, 0, 0<<11 | 718, 2<<4 | 0, argp_vb},
	// setpe
	{[4]byte{0x0F, 0x9A}, 0, 0, 0<<11 | 719, 2<<4 | 0, argp_vb},
	// setpo
	{[4]byte{0x0F, 0x9B}, 0, 0, 0<<11 | 720, 2<<4 | 0, argp_vb},
	// sets
	{[4]byte{0x0F, 0x98}, 0, 0, 0<<11 | 721, 2<<4 | 0, argp_vb},
	// setz
	{[4]byte{0x0F, 0x94}, 0, 0, 0<<11 | 722, 2<<4 | 0, argp_vb},
	// sfence
	{[4]byte{0x0F, 0xAE, 0xF8}, 0, feats.AMD, 0<<11 | 723, 3<<4 | 15, argp_},
	// sgdt
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 724, 2<<4 | 0, argp_m1},
	// sha1msg1
	{[4]byte{0x0F, 0x38, 0xC9}, 0, feats.SHA, 0<<11 | 725, 3<<4 | 15, argp_yowo},
	// sha1msg2
	{[4]byte{0x0F, 0x38, 0xCA}, 0, feats.SHA, 0<<11 | 726, 3<<4 | 15, argp_yowo},
	// sha1nexte
	{[4]byte{0x0F, 0x38, 0xC8}, 0, feats.SHA, 0<<11 | 727, 3<<4 | 15, argp_yowo},
	// sha1rnds4
	{[4]byte{0x0F, 0x3A, 0xCC}, 0, feats.SHA, 0<<11 | 728, 3<<4 | 15, argp_yowoib},
	// sha256msg1
	{[4]byte{0x0F, 0x38, 0xCC}, 0, feats.SHA, 0<<11 | 729, 3<<4 | 15, argp_yowo},
	// sha256msg2
	{[4]byte{0x0F, 0x38, 0xCD}, 0, feats.SHA, 0<<11 | 730, 3<<4 | 15, argp_yowo},
	// sha256rnds2
	{[4]byte{0x0F, 0x38, 0xCB}, 0, feats.SHA, 0<<11 | 731, 3<<4 | 15, argp_yowo},
	// shl
	{[4]byte{0xD2}, 0, 0, 0<<11 | 732, 1<<4 | 4, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 732, 1<<4 | 4, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 732, 1<<4 | 4, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 732, 1<<4 | 4, argp_v0ib},
	// shld
	{[4]byte{0x0F, 0xA5}, flags.AUTO_SIZE | flags.ENC_MR, 0, 0<<11 | 733, 2<<4 | 15, argp_v0r0Bb},
	{[4]byte{0x0F, 0xA4}, flags.AUTO_SIZE | flags.ENC_MR, 0, 1<<11 | 733, 2<<4 | 15, argp_v0r0ib},
	// shlx
	{[4]byte{0x02, 0xF7}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_MR | flags.PREF_66, feats.BMI2, 0<<11 | 734, 2<<4 | 15, argp_r0v0r0},
	// shr
	{[4]byte{0xD2}, 0, 0, 0<<11 | 735, 1<<4 | 5, argp_vbBb},
	{[4]byte{0xC0}, 0, 0, 1<<11 | 735, 1<<4 | 5, argp_vbib},
	{[4]byte{0xD3}, flags.AUTO_SIZE, 0, 2<<11 | 735, 1<<4 | 5, argp_v0Bb},
	{[4]byte{0xC1}, flags.AUTO_SIZE, 0, 3<<11 | 735, 1<<4 | 5, argp_v0ib},
	// shrd
	{[4]byte{0x0F, 0xAD}, flags.AUTO_SIZE | flags.ENC_MR, 0, 0<<11 | 736, 2<<4 | 15, argp_v0r0Bb},
	{[4]byte{0x0F, 0xAC}, flags.AUTO_SIZE | flags.ENC_MR, 0, 1<<11 | 736, 2<<4 | 15, argp_v0r0ib},
	// shrx
	{[4]byte{0x02, 0xF7}, flags.VEX_OP | flags.AUTO_REXW | flags.ENC_MR | flags.PREF_F2, feats.BMI2, 0<<11 | 737, 2<<4 | 15, argp_r0v0r0},
	// shufpd
	{[4]byte{0x0F, 0xC6}, flags.PREF_66, feats.SSE2, 0<<11 | 738, 2<<4 | 15, argp_yowoib},
	// shufps
	{[4]byte{0x0F, 0xC6}, 0, feats.SSE, 0<<11 | 739, 2<<4 | 15, argp_yowoib},
	// sidt
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 740, 2<<4 | 1, argp_m1},
	// skinit
	{[4]byte{0x0F, 0x01, 0xDE}, 0, 0, 0<<11 | 741, 3<<4 | 15, argp_},
	// sldt
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 742, 2<<4 | 0, argp_m1},
	{[4]byte{0x0F, 0x00}, flags.AUTO_SIZE, 0, 1<<11 | 742, 2<<4 | 0, argp_r0},
	// slwpcb
	{[4]byte{0x09, 0x12}, flags.XOP_OP | flags.AUTO_REXW, feats.AMD, 0<<11 | 743, 2<<4 | 1, argp_r0},
	// smint
	{[4]byte{0x0F, 0x38}, 0, feats.CYRIX, 0<<11 | 744, 2<<4 | 15, argp_},
	// smsw
	{[4]byte{0x0F, 0x01}, 0, 0, 0<<11 | 745, 2<<4 | 4, argp_m1},
	{[4]byte{0x0F, 0x01}, flags.AUTO_SIZE, 0, 1<<11 | 745, 2<<4 | 4, argp_r0},
	// sqrtpd
	{[4]byte{0x0F, 0x51}, flags.PREF_66, feats.SSE2, 0<<11 | 746, 2<<4 | 15, argp_yowo},
	// sqrtps
	{[4]byte{0x0F, 0x51}, 0, feats.SSE, 0<<11 | 747, 2<<4 | 15, argp_yowo},
	// sqrtsd
	{[4]byte{0x0F, 0x51}, flags.PREF_F2, feats.SSE2, 0<<11 | 748, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x51}, flags.PREF_F2, feats.SSE2, 1<<11 | 748, 2<<4 | 15, argp_yoyo},
	// sqrtss
	{[4]byte{0x0F, 0x51}, flags.PREF_F3, feats.SSE, 0<<11 | 749, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x51}, flags.PREF_F3, feats.SSE, 1<<11 | 749, 2<<4 | 15, argp_yoyo},
	// stac
	{[4]byte{0x0F, 0x01, 0xCB}, 0, 0, 0<<11 | 750, 3<<4 | 15, argp_},
	// stc
	{[4]byte{0xF9}, 0, 0, 0<<11 | 751, 1<<4 | 15, argp_},
	// std
	{[4]byte{0xFD}, 0, 0, 0<<11 | 752, 1<<4 | 15, argp_},
	// stgi
	{[4]byte{0x0F, 0x01, 0xDC}, 0, feats.VMX | feats.AMD, 0<<11 | 753, 3<<4 | 15, argp_},
	// sti
	{[4]byte{0xFB}, 0, 0, 0<<11 | 754, 1<<4 | 15, argp_},
	// stmxcsr
	{[4]byte{0x0F, 0xAE}, 0, feats.SSE, 0<<11 | 755, 2<<4 | 3, argp_md},
	// stosb
	{[4]byte{0xAA}, flags.REP, 0, 0<<11 | 756, 1<<4 | 15, argp_},
	// stosd
	{[4]byte{0xAB}, flags.REP, 0, 0<<11 | 757, 1<<4 | 15, argp_},
	// stosq
	{[4]byte{0xAB}, flags.WITH_REXW | flags.REP, 0, 0<<11 | 758, 1<<4 | 15, argp_},
	// stosw
	{[4]byte{0xAB}, flags.WORD_SIZE | flags.REP, 0, 0<<11 | 759, 1<<4 | 15, argp_},
	// str
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 760, 2<<4 | 1, argp_m1},
	{[4]byte{0x0F, 0x00}, flags.AUTO_SIZE, 0, 1<<11 | 760, 2<<4 | 1, argp_r0},
	// sub
	{[4]byte{0x2C}, 0, 0, 0<<11 | 761, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 761, 1<<4 | 5, argp_mbib},
	{[4]byte{0x28}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 761, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 761, 1<<4 | 5, argp_rbib},
	{[4]byte{0x28}, flags.ENC_MR, 0, 4<<11 | 761, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x2A}, 0, 0, 5<<11 | 761, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 761, 1<<4 | 5, argp_r0ib},
	{[4]byte{0x2D}, flags.AUTO_SIZE, 0, 7<<11 | 761, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 761, 1<<4 | 5, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 761, 1<<4 | 5, argp_m0ib},
	{[4]byte{0x29}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 761, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 761, 1<<4 | 5, argp_r0i0},
	{[4]byte{0x29}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 761, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x2B}, flags.AUTO_SIZE, 0, 13<<11 | 761, 1<<4 | 15, argp_r0v0},
	// subpd
	{[4]byte{0x0F, 0x5C}, flags.PREF_66, feats.SSE2, 0<<11 | 762, 2<<4 | 15, argp_yowo},
	// subps
	{[4]byte{0x0F, 0x5C}, 0, feats.SSE, 0<<11 | 763, 2<<4 | 15, argp_yowo},
	// subsd
	{[4]byte{0x0F, 0x5C}, flags.PREF_F2, feats.SSE2, 0<<11 | 764, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x5C}, flags.PREF_F2, feats.SSE2, 1<<11 | 764, 2<<4 | 15, argp_yoyo},
	// subss
	{[4]byte{0x0F, 0x5C}, flags.PREF_F3, feats.SSE, 0<<11 | 765, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x5C}, flags.PREF_F3, feats.SSE, 1<<11 | 765, 2<<4 | 15, argp_yoyo},
	// svdc
	{[4]byte{0x0F, 0x78}, flags.ENC_MR | flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 766, 2<<4 | 15, argp_mpsw},
	// svldt
	{[4]byte{0x0F, 0x7A}, flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 767, 2<<4 | 0, argp_mp},
	// svts
	{[4]byte{0x0F, 0x7C}, flags.EXACT_SIZE, feats.CYRIX, 0<<11 | 768, 2<<4 | 0, argp_mp},
	// swapgs
	{[4]byte{0x0F, 0x01, 0xF8}, 0, 0, 0<<11 | 769, 3<<4 | 15, argp_},
	// syscall
	{[4]byte{0x0F, 0x05}, 0, feats.AMD, 0<<11 | 770, 2<<4 | 15, argp_},
	// sysenter
	{[4]byte{0x0F, 0x34}, flags.X86_ONLY, 0, 0<<11 | 771, 2<<4 | 15, argp_},
	// sysexit
	{[4]byte{0x0F, 0x35}, flags.X86_ONLY, 0, 0<<11 | 772, 2<<4 | 15, argp_},
	// sysret
	{[4]byte{0x0F, 0x07}, 0, feats.AMD, 0<<11 | 773, 2<<4 | 15, argp_},
	// t1mskc
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 774, 2<<4 | 7, argp_r0v0},
	// test
	{[4]byte{0xA8}, 0, 0, 0<<11 | 775, 1<<4 | 15, argp_Abib},
	{[4]byte{0x84}, 0, 0, 1<<11 | 775, 1<<4 | 15, argp_rbmb},
	{[4]byte{0xF6}, 0, 0, 2<<11 | 775, 1<<4 | 0, argp_vbib},
	{[4]byte{0x84}, flags.ENC_MR, 0, 3<<11 | 775, 1<<4 | 15, argp_vbrb},
	{[4]byte{0xA9}, flags.AUTO_SIZE, 0, 4<<11 | 775, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x85}, flags.AUTO_SIZE, 0, 5<<11 | 775, 1<<4 | 15, argp_r0m0},
	{[4]byte{0xF7}, flags.AUTO_SIZE, 0, 6<<11 | 775, 1<<4 | 0, argp_v0i0},
	{[4]byte{0x85}, flags.AUTO_SIZE | flags.ENC_MR, 0, 7<<11 | 775, 1<<4 | 15, argp_v0r0},
	// tzcnt
	{[4]byte{0x0F, 0xBC}, flags.AUTO_SIZE | flags.PREF_F3, feats.BMI1, 0<<11 | 776, 2<<4 | 15, argp_r0v0},
	// tzmsk
	{[4]byte{0x09, 0x01}, flags.XOP_OP | flags.AUTO_REXW | flags.ENC_VM, feats.TBM, 0<<11 | 777, 2<<4 | 4, argp_r0v0},
	// ucomisd
	{[4]byte{0x0F, 0x2E}, flags.PREF_66, feats.SSE2, 0<<11 | 778, 2<<4 | 15, argp_yomq},
	{[4]byte{0x0F, 0x2E}, flags.PREF_66, feats.SSE2, 1<<11 | 778, 2<<4 | 15, argp_yoyo},
	// ucomiss
	{[4]byte{0x0F, 0x2E}, 0, feats.SSE, 0<<11 | 779, 2<<4 | 15, argp_yomd},
	{[4]byte{0x0F, 0x2E}, 0, feats.SSE, 1<<11 | 779, 2<<4 | 15, argp_yoyo},
	// ud2
	{[4]byte{0x0F, 0x0B}, 0, 0, 0<<11 | 780, 2<<4 | 15, argp_},
	// ud2a
	{[4]byte{0x0F, 0x0B}, 0, 0, 0<<11 | 781, 2<<4 | 15, argp_},
	// unpckhpd
	{[4]byte{0x0F, 0x15}, flags.PREF_66, feats.SSE2, 0<<11 | 782, 2<<4 | 15, argp_yowo},
	// unpckhps
	{[4]byte{0x0F, 0x15}, 0, feats.SSE, 0<<11 | 783, 2<<4 | 15, argp_yowo},
	// unpcklpd
	{[4]byte{0x0F, 0x14}, flags.PREF_66, feats.SSE2, 0<<11 | 784, 2<<4 | 15, argp_yowo},
	// unpcklps
	{[4]byte{0x0F, 0x14}, 0, feats.SSE, 0<<11 | 785, 2<<4 | 15, argp_yowo},
	// vaddpd
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 786, 2<<4 | 15, argp_y0y0w0},
	// vaddps
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 787, 2<<4 | 15, argp_y0y0w0},
	// vaddsd
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 788, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 788, 2<<4 | 15, argp_yoyoyo},
	// vaddss
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 789, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x58}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 789, 2<<4 | 15, argp_yoyoyo},
	// vaddsubpd
	{[4]byte{0x01, 0xD0}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 790, 2<<4 | 15, argp_y0y0w0},
	// vaddsubps
	{[4]byte{0x01, 0xD0}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 791, 2<<4 | 15, argp_y0y0w0},
	// vaesdec
	{[4]byte{0x02, 0xDE}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 792, 2<<4 | 15, argp_yoyowo},
	// vaesdeclast
	{[4]byte{0x02, 0xDF}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 793, 2<<4 | 15, argp_yoyowo},
	// vaesenc
	{[4]byte{0x02, 0xDC}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 794, 2<<4 | 15, argp_yoyowo},
	// vaesenclast
	{[4]byte{0x02, 0xDD}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 795, 2<<4 | 15, argp_yoyowo},
	// vaesimc
	{[4]byte{0x02, 0xDB}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 796, 2<<4 | 15, argp_yowo},
	// vaeskeygenassist
	{[4]byte{0x03, 0xDF}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 797, 2<<4 | 15, argp_yowoib},
	// vandnpd
	{[4]byte{0x01, 0x55}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 798, 2<<4 | 15, argp_y0y0w0},
	// vandnps
	{[4]byte{0x01, 0x55}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 799, 2<<4 | 15, argp_y0y0w0},
	// vandpd
	{[4]byte{0x01, 0x54}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 800, 2<<4 | 15, argp_y0y0w0},
	// vandps
	{[4]byte{0x01, 0x54}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 801, 2<<4 | 15, argp_y0y0w0},
	// vblendpd
	{[4]byte{0x03, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 802, 2<<4 | 15, argp_y0y0w0ib},
	// vblendps
	{[4]byte{0x03, 0x0C}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 803, 2<<4 | 15, argp_y0y0w0ib},
	// vblendvpd
	{[4]byte{0x03, 0x4B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 804, 2<<4 | 15, argp_y0y0w0y0},
	// vblendvps
	{[4]byte{0x03, 0x4A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 805, 2<<4 | 15, argp_y0y0w0y0},
	// vbroadcastf128
	{[4]byte{0x02, 0x1A}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 806, 2<<4 | 15, argp_yhmo},
	// vbroadcasti128
	{[4]byte{0x02, 0x5A}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 807, 2<<4 | 15, argp_yhmo},
	// vbroadcastsd
	{[4]byte{0x02, 0x19}, flags.VEX_OP | flags.WITH_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 808, 2<<4 | 15, argp_yhmq},
	{[4]byte{0x02, 0x19}, flags.VEX_OP | flags.WITH_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 808, 2<<4 | 15, argp_yhyo},
	// vbroadcastss
	{[4]byte{0x02, 0x18}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 809, 2<<4 | 15, argp_y0md},
	{[4]byte{0x02, 0x18}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 809, 2<<4 | 15, argp_y0yo},
	// vcmpeq_ospd
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 810, 3<<4 | 15, argp_y0y0w0},
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 810, 3<<4 | 15, argp_yoyowo},
	// vcmpeq_osps
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 811, 3<<4 | 15, argp_y0y0w0},
	// vcmpeq_ossd
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 812, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 812, 3<<4 | 15, argp_yoyoyo},
	// vcmpeq_osss
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 813, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x10}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 813, 3<<4 | 15, argp_yoyoyo},
	// vcmpeq_uqpd
	{[4]byte{0x01, 0xC2, 0x08}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 814, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 814, 3<<4 | 15, argp_yoyowo},
	// vcmpeq_uqps
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 815, 3<<4 | 15, argp_y0y0w0},
	// vcmpeq_uqsd
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 816, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 816, 3<<4 | 15, argp_yoyoyo},
	// vcmpeq_uqss
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 817, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x08}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 817, 3<<4 | 15, argp_yoyoyo},
	// vcmpeq_uspd
	{[4]byte{0x01, 0xC2, 0x18}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 818, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 818, 3<<4 | 15, argp_yoyowo},
	// vcmpeq_usps
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 819, 3<<4 | 15, argp_y0y0w0},
	// vcmpeq_ussd
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 820, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 820, 3<<4 | 15, argp_yoyoyo},
	// vcmpeq_usss
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 821, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x18}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 821, 3<<4 | 15, argp_yoyoyo},
	// vcmpeqpd
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 822, 3<<4 | 15, argp_y0y0w0},
	// vcmpeqps
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 823, 3<<4 | 15, argp_y0y0w0},
	// vcmpeqsd
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 824, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 824, 3<<4 | 15, argp_yoyoyo},
	// vcmpeqss
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 825, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x00}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 825, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalse_oqpd
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 826, 3<<4 | 15, argp_y0y0w0},
	// vcmpfalse_oqps
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 827, 3<<4 | 15, argp_y0y0w0},
	// vcmpfalse_oqsd
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 828, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 828, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalse_oqss
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 829, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 829, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalse_ospd
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 830, 3<<4 | 15, argp_y0y0w0},
	// vcmpfalse_osps
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 831, 3<<4 | 15, argp_y0y0w0},
	// vcmpfalse_ossd
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 832, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 832, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalse_osss
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 833, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1B}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 833, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalsepd
	{[4]byte{0x01, 0xC2, 0x0B}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 834, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 834, 3<<4 | 15, argp_yoyowo},
	// vcmpfalseps
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 835, 3<<4 | 15, argp_y0y0w0},
	// vcmpfalsesd
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 836, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 836, 3<<4 | 15, argp_yoyoyo},
	// vcmpfalsess
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 837, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0B}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 837, 3<<4 | 15, argp_yoyoyo},
	// vcmpge_oqpd
	{[4]byte{0x01, 0xC2, 0x1D}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 838, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 838, 3<<4 | 15, argp_yoyowo},
	// vcmpge_oqps
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 839, 3<<4 | 15, argp_y0y0w0},
	// vcmpge_oqsd
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 840, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 840, 3<<4 | 15, argp_yoyoyo},
	// vcmpge_oqss
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 841, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 841, 3<<4 | 15, argp_yoyoyo},
	// vcmpge_ospd
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 842, 3<<4 | 15, argp_y0y0w0},
	// vcmpge_osps
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 843, 3<<4 | 15, argp_y0y0w0},
	// vcmpge_ossd
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 844, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 844, 3<<4 | 15, argp_yoyoyo},
	// vcmpge_osss
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 845, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 845, 3<<4 | 15, argp_yoyoyo},
	// vcmpgepd
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 846, 3<<4 | 15, argp_y0y0w0},
	// vcmpgeps
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 847, 3<<4 | 15, argp_y0y0w0},
	// vcmpgesd
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 848, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 848, 3<<4 | 15, argp_yoyoyo},
	// vcmpgess
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 849, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0D}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 849, 3<<4 | 15, argp_yoyoyo},
	// vcmpgt_oqpd
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 850, 3<<4 | 15, argp_y0y0w0},
	// vcmpgt_oqps
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 851, 3<<4 | 15, argp_y0y0w0},
	// vcmpgt_oqsd
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 852, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 852, 3<<4 | 15, argp_yoyoyo},
	// vcmpgt_oqss
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 853, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1E}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 853, 3<<4 | 15, argp_yoyoyo},
	// vcmpgt_ospd
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 854, 3<<4 | 15, argp_y0y0w0},
	// vcmpgt_osps
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 855, 3<<4 | 15, argp_y0y0w0},
	// vcmpgt_ossd
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 856, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 856, 3<<4 | 15, argp_yoyoyo},
	// vcmpgt_osss
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 857, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 857, 3<<4 | 15, argp_yoyoyo},
	// vcmpgtpd
	{[4]byte{0x01, 0xC2, 0x0E}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 858, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 858, 3<<4 | 15, argp_yoyowo},
	// vcmpgtps
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 859, 3<<4 | 15, argp_y0y0w0},
	// vcmpgtsd
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 860, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 860, 3<<4 | 15, argp_yoyoyo},
	// vcmpgtss
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 861, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0E}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 861, 3<<4 | 15, argp_yoyoyo},
	// vcmple_oqpd
	{[4]byte{0x01, 0xC2, 0x12}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 862, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 862, 3<<4 | 15, argp_yoyowo},
	// vcmple_oqps
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 863, 3<<4 | 15, argp_y0y0w0},
	// vcmple_oqsd
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 864, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 864, 3<<4 | 15, argp_yoyoyo},
	// vcmple_oqss
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 865, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x12}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 865, 3<<4 | 15, argp_yoyoyo},
	// vcmple_ospd
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 866, 3<<4 | 15, argp_y0y0w0},
	// vcmple_osps
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 867, 3<<4 | 15, argp_y0y0w0},
	// vcmple_ossd
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 868, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 868, 3<<4 | 15, argp_yoyoyo},
	// vcmple_osss
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 869, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 869, 3<<4 | 15, argp_yoyoyo},
	// vcmplepd
	{[4]byte{0x01, 0xC2, 0x02}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 870, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 870, 3<<4 | 15, argp_yoyowo},
	// vcmpleps
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 871, 3<<4 | 15, argp_y0y0w0},
	// vcmplesd
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 872, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 872, 3<<4 | 15, argp_yoyoyo},
	// vcmpless
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 873, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x02}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 873, 3<<4 | 15, argp_yoyoyo},
	// vcmplt_oqpd
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 874, 3<<4 | 15, argp_y0y0w0},
	// vcmplt_oqps
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 875, 3<<4 | 15, argp_y0y0w0},
	// vcmplt_oqsd
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 876, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 876, 3<<4 | 15, argp_yoyoyo},
	// vcmplt_oqss
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 877, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x11}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 877, 3<<4 | 15, argp_yoyoyo},
	// vcmplt_ospd
	{[4]byte{0x01, 0xC2, 0x01}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 878, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 878, 3<<4 | 15, argp_yoyowo},
	// vcmplt_osps
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 879, 3<<4 | 15, argp_y0y0w0},
	// vcmplt_ossd
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 880, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 880, 3<<4 | 15, argp_yoyoyo},
	// vcmplt_osss
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 881, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 881, 3<<4 | 15, argp_yoyoyo},
	// vcmpltpd
	{[4]byte{0x01, 0xC2, 0x01}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 882, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 882, 3<<4 | 15, argp_yoyowo},
	// vcmpltps
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 883, 3<<4 | 15, argp_y0y0w0},
	// vcmpltsd
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 884, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 884, 3<<4 | 15, argp_yoyoyo},
	// vcmpltss
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 885, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x01}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 885, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_oqpd
	{[4]byte{0x01, 0xC2, 0x0C}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 886, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 886, 3<<4 | 15, argp_yoyowo},
	// vcmpneq_oqps
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 887, 3<<4 | 15, argp_y0y0w0},
	// vcmpneq_oqsd
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 888, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 888, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_oqss
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 889, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0C}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 889, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_ospd
	{[4]byte{0x01, 0xC2, 0x1C}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 890, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 890, 3<<4 | 15, argp_yoyowo},
	// vcmpneq_osps
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 891, 3<<4 | 15, argp_y0y0w0},
	// vcmpneq_ossd
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 892, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 892, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_osss
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 893, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1C}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 893, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_uqpd
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 894, 3<<4 | 15, argp_y0y0w0},
	// vcmpneq_uqps
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 895, 3<<4 | 15, argp_y0y0w0},
	// vcmpneq_uqsd
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 896, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 896, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_uqss
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 897, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 897, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_uspd
	{[4]byte{0x01, 0xC2, 0x14}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 898, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 898, 3<<4 | 15, argp_yoyowo},
	// vcmpneq_usps
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 899, 3<<4 | 15, argp_y0y0w0},
	// vcmpneq_ussd
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 900, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 900, 3<<4 | 15, argp_yoyoyo},
	// vcmpneq_usss
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 901, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x14}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 901, 3<<4 | 15, argp_yoyoyo},
	// vcmpneqpd
	{[4]byte{0x01, 0xC2, 0x04}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 902, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 902, 3<<4 | 15, argp_yoyowo},
	// vcmpneqps
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 903, 3<<4 | 15, argp_y0y0w0},
	// vcmpneqsd
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 904, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 904, 3<<4 | 15, argp_yoyoyo},
	// vcmpneqss
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 905, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x04}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 905, 3<<4 | 15, argp_yoyoyo},
	// vcmpnge_uqpd
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 906, 3<<4 | 15, argp_y0y0w0},
	// vcmpnge_uqps
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 907, 3<<4 | 15, argp_y0y0w0},
	// vcmpnge_uqsd
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 908, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 908, 3<<4 | 15, argp_yoyoyo},
	// vcmpnge_uqss
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 909, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x19}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 909, 3<<4 | 15, argp_yoyoyo},
	// vcmpnge_uspd
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 910, 3<<4 | 15, argp_y0y0w0},
	// vcmpnge_usps
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 911, 3<<4 | 15, argp_y0y0w0},
	// vcmpnge_ussd
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 912, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 912, 3<<4 | 15, argp_yoyoyo},
	// vcmpnge_usss
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 913, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 913, 3<<4 | 15, argp_yoyoyo},
	// vcmpngepd
	{[4]byte{0x01, 0xC2, 0x09}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 914, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 914, 3<<4 | 15, argp_yoyowo},
	// vcmpngeps
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 915, 3<<4 | 15, argp_y0y0w0},
	// vcmpngesd
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 916, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 916, 3<<4 | 15, argp_yoyoyo},
	// vcmpngess
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 917, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x09}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 917, 3<<4 | 15, argp_yoyoyo},
	// vcmpngt_uqpd
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 918, 3<<4 | 15, argp_y0y0w0},
	// vcmpngt_uqps
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 919, 3<<4 | 15, argp_y0y0w0},
	// vcmpngt_uqsd
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 920, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 920, 3<<4 | 15, argp_yoyoyo},
	// vcmpngt_uqss
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 921, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 921, 3<<4 | 15, argp_yoyoyo},
	// vcmpngt_uspd
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 922, 3<<4 | 15, argp_y0y0w0},
	// vcmpngt_usps
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 923, 3<<4 | 15, argp_y0y0w0},
	// vcmpngt_ussd
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 924, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 924, 3<<4 | 15, argp_yoyoyo},
	// vcmpngt_usss
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 925, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 925, 3<<4 | 15, argp_yoyoyo},
	// vcmpngtpd
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 926, 3<<4 | 15, argp_y0y0w0},
	// vcmpngtps
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 927, 3<<4 | 15, argp_y0y0w0},
	// vcmpngtsd
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 928, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 928, 3<<4 | 15, argp_yoyoyo},
	// vcmpngtss
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 929, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0A}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 929, 3<<4 | 15, argp_yoyoyo},
	// vcmpnle_uqpd
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 930, 3<<4 | 15, argp_y0y0w0},
	// vcmpnle_uqps
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 931, 3<<4 | 15, argp_y0y0w0},
	// vcmpnle_uqsd
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 932, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 932, 3<<4 | 15, argp_yoyoyo},
	// vcmpnle_uqss
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 933, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x16}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 933, 3<<4 | 15, argp_yoyoyo},
	// vcmpnle_uspd
	{[4]byte{0x01, 0xC2, 0x06}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 934, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 934, 3<<4 | 15, argp_yoyowo},
	// vcmpnle_usps
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 935, 3<<4 | 15, argp_y0y0w0},
	// vcmpnle_ussd
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 936, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 936, 3<<4 | 15, argp_yoyoyo},
	// vcmpnle_usss
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 937, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 937, 3<<4 | 15, argp_yoyoyo},
	// vcmpnlepd
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 938, 3<<4 | 15, argp_y0y0w0},
	// vcmpnleps
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 939, 3<<4 | 15, argp_y0y0w0},
	// vcmpnlesd
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 940, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 940, 3<<4 | 15, argp_yoyoyo},
	// vcmpnless
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 941, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x06}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 941, 3<<4 | 15, argp_yoyoyo},
	// vcmpnlt_uqpd
	{[4]byte{0x01, 0xC2, 0x15}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 942, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 942, 3<<4 | 15, argp_yoyowo},
	// vcmpnlt_uqps
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 943, 3<<4 | 15, argp_y0y0w0},
	// vcmpnlt_uqsd
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 944, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 944, 3<<4 | 15, argp_yoyoyo},
	// vcmpnlt_uqss
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 945, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x15}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 945, 3<<4 | 15, argp_yoyoyo},
	// vcmpnlt_uspd
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 946, 3<<4 | 15, argp_y0y0w0},
	// vcmpnlt_usps
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 947, 3<<4 | 15, argp_y0y0w0},
	// vcmpnlt_ussd
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 948, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 948, 3<<4 | 15, argp_yoyoyo},
	// vcmpnlt_usss
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 949, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 949, 3<<4 | 15, argp_yoyoyo},
	// vcmpnltpd
	{[4]byte{0x01, 0xC2, 0x05}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 950, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 950, 3<<4 | 15, argp_yoyowo},
	// vcmpnltps
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 951, 3<<4 | 15, argp_y0y0w0},
	// vcmpnltsd
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 952, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 952, 3<<4 | 15, argp_yoyoyo},
	// vcmpnltss
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 953, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x05}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 953, 3<<4 | 15, argp_yoyoyo},
	// vcmpord_qpd
	{[4]byte{0x01, 0xC2, 0x07}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 954, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 954, 3<<4 | 15, argp_yoyowo},
	// vcmpord_qps
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 955, 3<<4 | 15, argp_y0y0w0},
	// vcmpord_qsd
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 956, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 956, 3<<4 | 15, argp_yoyoyo},
	// vcmpord_qss
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 957, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 957, 3<<4 | 15, argp_yoyoyo},
	// vcmpord_spd
	{[4]byte{0x01, 0xC2, 0x17}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 958, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 958, 3<<4 | 15, argp_yoyowo},
	// vcmpord_sps
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 959, 3<<4 | 15, argp_y0y0w0},
	// vcmpord_ssd
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 960, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 960, 3<<4 | 15, argp_yoyoyo},
	// vcmpord_sss
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 961, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x17}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 961, 3<<4 | 15, argp_yoyoyo},
	// vcmpordpd
	{[4]byte{0x01, 0xC2, 0x07}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 962, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 962, 3<<4 | 15, argp_yoyowo},
	// vcmpordps
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 963, 3<<4 | 15, argp_y0y0w0},
	// vcmpordsd
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 964, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 964, 3<<4 | 15, argp_yoyoyo},
	// vcmpordss
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 965, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x07}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 965, 3<<4 | 15, argp_yoyoyo},
	// vcmppd
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 966, 2<<4 | 15, argp_y0y0w0ib},
	// vcmpps
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR, feats.AVX, 0<<11 | 967, 2<<4 | 15, argp_y0y0w0ib},
	// vcmpsd
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 968, 2<<4 | 15, argp_yoyomqib},
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 968, 2<<4 | 15, argp_yoyoyoib},
	// vcmpss
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 969, 2<<4 | 15, argp_yoyomqib},
	{[4]byte{0x01, 0xC2}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 969, 2<<4 | 15, argp_yoyoyoib},
	// vcmptrue_uqpd
	{[4]byte{0x01, 0xC2, 0x0F}, flags.WITH_VEXL | flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 970, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 1<<11 | 970, 3<<4 | 15, argp_yoyowo},
	// vcmptrue_uqps
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 971, 3<<4 | 15, argp_y0y0w0},
	// vcmptrue_uqsd
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 972, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 972, 3<<4 | 15, argp_yoyoyo},
	// vcmptrue_uqss
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 973, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 973, 3<<4 | 15, argp_yoyoyo},
	// vcmptrue_uspd
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 974, 3<<4 | 15, argp_y0y0w0},
	// vcmptrue_usps
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 975, 3<<4 | 15, argp_y0y0w0},
	// vcmptrue_ussd
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 976, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 976, 3<<4 | 15, argp_yoyoyo},
	// vcmptrue_usss
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 977, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x1F}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 977, 3<<4 | 15, argp_yoyoyo},
	// vcmptruepd
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 978, 3<<4 | 15, argp_y0y0w0},
	// vcmptrueps
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 979, 3<<4 | 15, argp_y0y0w0},
	// vcmptruesd
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 980, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 980, 3<<4 | 15, argp_yoyoyo},
	// vcmptruess
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 0<<11 | 981, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x0F}, flags.VEX_OP | flags.PREF_F3 | flags.IMM_OP, feats.AVX, 1<<11 | 981, 3<<4 | 15, argp_yoyoyo},
	// vcmpunord_qpd
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 982, 3<<4 | 15, argp_y0y0w0},
	// vcmpunord_qps
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 983, 3<<4 | 15, argp_y0y0w0},
	// vcmpunord_qsd
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 0<<11 | 984, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F2, feats.AVX, 1<<11 | 984, 3<<4 | 15, argp_yoyoyo},
	// vcmpunord_qss
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 985, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 985, 3<<4 | 15, argp_yoyoyo},
	// vcmpunord_spd
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 986, 3<<4 | 15, argp_y0y0w0},
	// vcmpunord_sps
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 987, 3<<4 | 15, argp_y0y0w0},
	// vcmpunord_ssd
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 988, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 988, 3<<4 | 15, argp_yoyoyo},
	// vcmpunord_sss
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 989, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x13}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 989, 3<<4 | 15, argp_yoyoyo},
	// vcmpunordpd
	{[4]byte{0x01, 0xC2, 0x03}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 990, 3<<4 | 15, argp_yhyhwh},
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 1<<11 | 990, 3<<4 | 15, argp_yoyowo},
	// vcmpunordps
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.AUTO_VEXL | flags.IMM_OP, feats.AVX, 0<<11 | 991, 3<<4 | 15, argp_y0y0w0},
	// vcmpunordsd
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 0<<11 | 992, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.PREF_F2 | flags.IMM_OP, feats.AVX, 1<<11 | 992, 3<<4 | 15, argp_yoyoyo},
	// vcmpunordss
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 0<<11 | 993, 3<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0xC2, 0x03}, flags.VEX_OP | flags.IMM_OP | flags.PREF_F3, feats.AVX, 1<<11 | 993, 3<<4 | 15, argp_yoyoyo},
	// vcomisd
	{[4]byte{0x01, 0x2F}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 994, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0x2F}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 994, 2<<4 | 15, argp_yoyo},
	// vcomiss
	{[4]byte{0x01, 0x2F}, flags.VEX_OP, feats.AVX, 0<<11 | 995, 2<<4 | 15, argp_yomd},
	{[4]byte{0x01, 0x2F}, flags.VEX_OP, feats.AVX, 1<<11 | 995, 2<<4 | 15, argp_yoyo},
	// vcvtdq2pd
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 996, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 1<<11 | 996, 2<<4 | 15, argp_y0wo},
	// vcvtdq2ps
	{[4]byte{0x01, 0x5B}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 997, 2<<4 | 15, argp_y0w0},
	// vcvtpd2dq
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 998, 2<<4 | 15, argp_yom0},
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 1<<11 | 998, 2<<4 | 15, argp_yoy0},
	// vcvtpd2ps
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 999, 2<<4 | 15, argp_yom0},
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 999, 2<<4 | 15, argp_yoy0},
	// vcvtph2ps
	{[4]byte{0x02, 0x13}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1000, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x13}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1000, 2<<4 | 15, argp_y0wo},
	// vcvtps2dq
	{[4]byte{0x01, 0x5B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1001, 2<<4 | 15, argp_y0w0},
	// vcvtps2pd
	{[4]byte{0x01, 0x5A}, flags.VEX_OP, feats.AVX, 0<<11 | 1002, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 1<<11 | 1002, 2<<4 | 15, argp_y0wo},
	// vcvtps2ph
	{[4]byte{0x03, 0x1D}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1003, 2<<4 | 15, argp_mqyoib},
	{[4]byte{0x03, 0x1D}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1003, 2<<4 | 15, argp_woy0ib},
	// vcvtsd2si
	{[4]byte{0x01, 0x2D}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.AVX, 0<<11 | 1004, 2<<4 | 15, argp_r0mq},
	{[4]byte{0x01, 0x2D}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.AVX, 1<<11 | 1004, 2<<4 | 15, argp_r0yo},
	// vcvtsd2ss
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1005, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1005, 2<<4 | 15, argp_yoyoyo},
	// vcvtsi2sd
	{[4]byte{0x01, 0x2A}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.AVX, 0<<11 | 1006, 2<<4 | 15, argp_yoyov0},
	// vcvtsi2ss
	{[4]byte{0x01, 0x2A}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.AVX, 0<<11 | 1007, 2<<4 | 15, argp_yoyov0},
	// vcvtss2sd
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1008, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x5A}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1008, 2<<4 | 15, argp_yoyoyo},
	// vcvtss2si
	{[4]byte{0x01, 0x2D}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.AVX, 0<<11 | 1009, 2<<4 | 15, argp_r0md},
	{[4]byte{0x01, 0x2D}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.AVX, 1<<11 | 1009, 2<<4 | 15, argp_r0yo},
	// vcvttpd2dq
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1010, 2<<4 | 15, argp_yom0},
	{[4]byte{0x01, 0xE6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1010, 2<<4 | 15, argp_yoy0},
	// vcvttps2dq
	{[4]byte{0x01, 0x5B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 0<<11 | 1011, 2<<4 | 15, argp_y0w0},
	// vcvttsd2si
	{[4]byte{0x01, 0x2C}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.AVX, 0<<11 | 1012, 2<<4 | 15, argp_r0mq},
	{[4]byte{0x01, 0x2C}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F2, feats.AVX, 1<<11 | 1012, 2<<4 | 15, argp_r0yo},
	// vcvttss2si
	{[4]byte{0x01, 0x2C}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.AVX, 0<<11 | 1013, 2<<4 | 15, argp_r0md},
	{[4]byte{0x01, 0x2C}, flags.VEX_OP | flags.AUTO_REXW | flags.PREF_F3, feats.AVX, 1<<11 | 1013, 2<<4 | 15, argp_r0yo},
	// vdivpd
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1014, 2<<4 | 15, argp_y0y0w0},
	// vdivps
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1015, 2<<4 | 15, argp_y0y0w0},
	// vdivsd
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1016, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1016, 2<<4 | 15, argp_yoyoyo},
	// vdivss
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1017, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x5E}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1017, 2<<4 | 15, argp_yoyoyo},
	// vdppd
	{[4]byte{0x03, 0x41}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1018, 2<<4 | 15, argp_yoyowoib},
	// vdpps
	{[4]byte{0x03, 0x40}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1019, 2<<4 | 15, argp_y0y0w0ib},
	// verr
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 1020, 2<<4 | 4, argp_m1},
	{[4]byte{0x0F, 0x00}, 0, 0, 1<<11 | 1020, 2<<4 | 4, argp_rw},
	// verw
	{[4]byte{0x0F, 0x00}, 0, 0, 0<<11 | 1021, 2<<4 | 5, argp_m1},
	{[4]byte{0x0F, 0x00}, 0, 0, 1<<11 | 1021, 2<<4 | 5, argp_rw},
	// vextractf128
	{[4]byte{0x03, 0x19}, flags.WITH_VEXL | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1022, 2<<4 | 15, argp_woyhib},
	// vextracti128
	{[4]byte{0x03, 0x39}, flags.WITH_VEXL | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1023, 2<<4 | 15, argp_woyhib},
	// vextractps
	{[4]byte{0x03, 0x17}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1024, 2<<4 | 15, argp_vdyoib},
	// vfmadd123pd
	{[4]byte{0x02, 0xA8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1025, 2<<4 | 15, argp_y0y0w0},
	// vfmadd123ps
	{[4]byte{0x02, 0xA8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1026, 2<<4 | 15, argp_y0y0w0},
	// vfmadd123sd
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1027, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1027, 2<<4 | 15, argp_yoyoyo},
	// vfmadd123ss
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1028, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1028, 2<<4 | 15, argp_yoyoyo},
	// vfmadd132pd
	{[4]byte{0x02, 0x98}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1029, 2<<4 | 15, argp_y0y0w0},
	// vfmadd132ps
	{[4]byte{0x02, 0x98}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1030, 2<<4 | 15, argp_y0y0w0},
	// vfmadd132sd
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1031, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1031, 2<<4 | 15, argp_yoyoyo},
	// vfmadd132ss
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1032, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1032, 2<<4 | 15, argp_yoyoyo},
	// vfmadd213pd
	{[4]byte{0x02, 0xA8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1033, 2<<4 | 15, argp_y0y0w0},
	// vfmadd213ps
	{[4]byte{0x02, 0xA8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1034, 2<<4 | 15, argp_y0y0w0},
	// vfmadd213sd
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1035, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1035, 2<<4 | 15, argp_yoyoyo},
	// vfmadd213ss
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1036, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xA9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1036, 2<<4 | 15, argp_yoyoyo},
	// vfmadd231pd
	{[4]byte{0x02, 0xB8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1037, 2<<4 | 15, argp_y0y0w0},
	// vfmadd231ps
	{[4]byte{0x02, 0xB8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1038, 2<<4 | 15, argp_y0y0w0},
	// vfmadd231sd
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1039, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1039, 2<<4 | 15, argp_yoyoyo},
	// vfmadd231ss
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1040, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1040, 2<<4 | 15, argp_yoyoyo},
	// vfmadd312pd
	{[4]byte{0x02, 0x98}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1041, 2<<4 | 15, argp_y0y0w0},
	// vfmadd312ps
	{[4]byte{0x02, 0x98}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1042, 2<<4 | 15, argp_y0y0w0},
	// vfmadd312sd
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1043, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1043, 2<<4 | 15, argp_yoyoyo},
	// vfmadd312ss
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1044, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x99}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1044, 2<<4 | 15, argp_yoyoyo},
	// vfmadd321pd
	{[4]byte{0x02, 0xB8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1045, 2<<4 | 15, argp_y0y0w0},
	// vfmadd321ps
	{[4]byte{0x02, 0xB8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1046, 2<<4 | 15, argp_y0y0w0},
	// vfmadd321sd
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1047, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1047, 2<<4 | 15, argp_yoyoyo},
	// vfmadd321ss
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1048, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xB9}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1048, 2<<4 | 15, argp_yoyoyo},
	// vfmaddpd
	{[4]byte{0x03, 0x69}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1049, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x69}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1049, 2<<4 | 15, argp_y0y0w0y0},
	// vfmaddps
	{[4]byte{0x03, 0x68}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1050, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x68}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1050, 2<<4 | 15, argp_y0y0w0y0},
	// vfmaddsd
	{[4]byte{0x03, 0x6B}, flags.VEX_OP | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1051, 2<<4 | 15, argp_yoyomqyo},
	{[4]byte{0x03, 0x6B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1051, 2<<4 | 15, argp_yoyoyomq},
	{[4]byte{0x03, 0x6B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 2<<11 | 1051, 2<<4 | 15, argp_yoyoyoyo},
	// vfmaddss
	{[4]byte{0x03, 0x6A}, flags.VEX_OP | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1052, 2<<4 | 15, argp_yoyomdyo},
	{[4]byte{0x03, 0x6A}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1052, 2<<4 | 15, argp_yoyoyomd},
	{[4]byte{0x03, 0x6A}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 2<<11 | 1052, 2<<4 | 15, argp_yoyoyoyo},
	// vfmaddsub123pd
	{[4]byte{0x02, 0xA6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1053, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub123ps
	{[4]byte{0x02, 0xA6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1054, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub132pd
	{[4]byte{0x02, 0x96}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1055, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub132ps
	{[4]byte{0x02, 0x96}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1056, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub213pd
	{[4]byte{0x02, 0xA6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1057, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub213ps
	{[4]byte{0x02, 0xA6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1058, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub231pd
	{[4]byte{0x02, 0xB6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1059, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub231ps
	{[4]byte{0x02, 0xB6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1060, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub312pd
	{[4]byte{0x02, 0x96}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1061, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub312ps
	{[4]byte{0x02, 0x96}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1062, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub321pd
	{[4]byte{0x02, 0xB6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1063, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsub321ps
	{[4]byte{0x02, 0xB6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1064, 2<<4 | 15, argp_y0y0w0},
	// vfmaddsubpd
	{[4]byte{0x03, 0x5D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1065, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x5D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1065, 2<<4 | 15, argp_y0y0w0y0},
	// vfmaddsubps
	{[4]byte{0x03, 0x5C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1066, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x5C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1066, 2<<4 | 15, argp_y0y0w0y0},
	// vfmsub123pd
	{[4]byte{0x02, 0xAA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1067, 2<<4 | 15, argp_y0y0w0},
	// vfmsub123ps
	{[4]byte{0x02, 0xAA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1068, 2<<4 | 15, argp_y0y0w0},
	// vfmsub123sd
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1069, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1069, 2<<4 | 15, argp_yoyoyo},
	// vfmsub123ss
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1070, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1070, 2<<4 | 15, argp_yoyoyo},
	// vfmsub132pd
	{[4]byte{0x02, 0x9A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1071, 2<<4 | 15, argp_y0y0w0},
	// vfmsub132ps
	{[4]byte{0x02, 0x9A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1072, 2<<4 | 15, argp_y0y0w0},
	// vfmsub132sd
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1073, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1073, 2<<4 | 15, argp_yoyoyo},
	// vfmsub132ss
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1074, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1074, 2<<4 | 15, argp_yoyoyo},
	// vfmsub213pd
	{[4]byte{0x02, 0xAA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1075, 2<<4 | 15, argp_y0y0w0},
	// vfmsub213ps
	{[4]byte{0x02, 0xAA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1076, 2<<4 | 15, argp_y0y0w0},
	// vfmsub213sd
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1077, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1077, 2<<4 | 15, argp_yoyoyo},
	// vfmsub213ss
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1078, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1078, 2<<4 | 15, argp_yoyoyo},
	// vfmsub231pd
	{[4]byte{0x02, 0xBA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1079, 2<<4 | 15, argp_y0y0w0},
	// vfmsub231ps
	{[4]byte{0x02, 0xBA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1080, 2<<4 | 15, argp_y0y0w0},
	// vfmsub231sd
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1081, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1081, 2<<4 | 15, argp_yoyoyo},
	// vfmsub231ss
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1082, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1082, 2<<4 | 15, argp_yoyoyo},
	// vfmsub312pd
	{[4]byte{0x02, 0x9A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1083, 2<<4 | 15, argp_y0y0w0},
	// vfmsub312ps
	{[4]byte{0x02, 0x9A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1084, 2<<4 | 15, argp_y0y0w0},
	// vfmsub312sd
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1085, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1085, 2<<4 | 15, argp_yoyoyo},
	// vfmsub312ss
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1086, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9B}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1086, 2<<4 | 15, argp_yoyoyo},
	// vfmsub321pd
	{[4]byte{0x02, 0xBA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1087, 2<<4 | 15, argp_y0y0w0},
	// vfmsub321ps
	{[4]byte{0x02, 0xBA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1088, 2<<4 | 15, argp_y0y0w0},
	// vfmsub321sd
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1089, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1089, 2<<4 | 15, argp_yoyoyo},
	// vfmsub321ss
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1090, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBB}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1090, 2<<4 | 15, argp_yoyoyo},
	// vfmsubadd123pd
	{[4]byte{0x02, 0xA7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1091, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd123ps
	{[4]byte{0x02, 0xA7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1092, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd132pd
	{[4]byte{0x02, 0x97}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1093, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd132ps
	{[4]byte{0x02, 0x97}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1094, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd213pd
	{[4]byte{0x02, 0xA7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1095, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd213ps
	{[4]byte{0x02, 0xA7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1096, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd231pd
	{[4]byte{0x02, 0xB7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1097, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd231ps
	{[4]byte{0x02, 0xB7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1098, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd312pd
	{[4]byte{0x02, 0x97}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1099, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd312ps
	{[4]byte{0x02, 0x97}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1100, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd321pd
	{[4]byte{0x02, 0xB7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1101, 2<<4 | 15, argp_y0y0w0},
	// vfmsubadd321ps
	{[4]byte{0x02, 0xB7}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1102, 2<<4 | 15, argp_y0y0w0},
	// vfmsubaddpd
	{[4]byte{0x03, 0x5F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1103, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x5F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1103, 2<<4 | 15, argp_y0y0w0y0},
	// vfmsubaddps
	{[4]byte{0x03, 0x5E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1104, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x5E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1104, 2<<4 | 15, argp_y0y0w0y0},
	// vfmsubpd
	{[4]byte{0x03, 0x6D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1105, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x6D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1105, 2<<4 | 15, argp_y0y0w0y0},
	// vfmsubps
	{[4]byte{0x03, 0x6C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1106, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x6C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1106, 2<<4 | 15, argp_y0y0w0y0},
	// vfmsubsd
	{[4]byte{0x03, 0x6F}, flags.VEX_OP | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1107, 2<<4 | 15, argp_yoyomqyo},
	{[4]byte{0x03, 0x6F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1107, 2<<4 | 15, argp_yoyoyomq},
	{[4]byte{0x03, 0x6F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 2<<11 | 1107, 2<<4 | 15, argp_yoyoyoyo},
	// vfmsubss
	{[4]byte{0x03, 0x6E}, flags.VEX_OP | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1108, 2<<4 | 15, argp_yoyomdyo},
	{[4]byte{0x03, 0x6E}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1108, 2<<4 | 15, argp_yoyoyomd},
	{[4]byte{0x03, 0x6E}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 2<<11 | 1108, 2<<4 | 15, argp_yoyoyoyo},
	// vfnmadd123pd
	{[4]byte{0x02, 0xAC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1109, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd123ps
	{[4]byte{0x02, 0xAC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1110, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd123sd
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1111, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1111, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd123ss
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1112, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1112, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd132pd
	{[4]byte{0x02, 0x9C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1113, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd132ps
	{[4]byte{0x02, 0x9C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1114, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd132sd
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1115, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1115, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd132ss
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1116, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1116, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd213pd
	{[4]byte{0x02, 0xAC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1117, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd213ps
	{[4]byte{0x02, 0xAC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1118, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd213sd
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1119, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1119, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd213ss
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1120, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1120, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd231pd
	{[4]byte{0x02, 0xBC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1121, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd231ps
	{[4]byte{0x02, 0xBC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1122, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd231sd
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1123, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1123, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd231ss
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1124, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1124, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd312pd
	{[4]byte{0x02, 0x9C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1125, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd312ps
	{[4]byte{0x02, 0x9C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1126, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd312sd
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1127, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1127, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd312ss
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1128, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9D}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1128, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd321pd
	{[4]byte{0x02, 0xBC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1129, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd321ps
	{[4]byte{0x02, 0xBC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1130, 2<<4 | 15, argp_y0y0w0},
	// vfnmadd321sd
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1131, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1131, 2<<4 | 15, argp_yoyoyo},
	// vfnmadd321ss
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1132, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBD}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1132, 2<<4 | 15, argp_yoyoyo},
	// vfnmaddpd
	{[4]byte{0x03, 0x79}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1133, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x79}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1133, 2<<4 | 15, argp_y0y0w0y0},
	// vfnmaddps
	{[4]byte{0x03, 0x78}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1134, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x78}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1134, 2<<4 | 15, argp_y0y0w0y0},
	// vfnmaddsd
	{[4]byte{0x03, 0x7B}, flags.VEX_OP | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1135, 2<<4 | 15, argp_yoyomqyo},
	{[4]byte{0x03, 0x7B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1135, 2<<4 | 15, argp_yoyoyomq},
	{[4]byte{0x03, 0x7B}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 2<<11 | 1135, 2<<4 | 15, argp_yoyoyoyo},
	// vfnmaddss
	{[4]byte{0x03, 0x7A}, flags.VEX_OP | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1136, 2<<4 | 15, argp_yoyomdyo},
	{[4]byte{0x03, 0x7A}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1136, 2<<4 | 15, argp_yoyoyomd},
	{[4]byte{0x03, 0x7A}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 2<<11 | 1136, 2<<4 | 15, argp_yoyoyoyo},
	// vfnmsub123pd
	{[4]byte{0x02, 0xAE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1137, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub123ps
	{[4]byte{0x02, 0xAE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1138, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub123sd
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1139, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1139, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub123ss
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1140, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1140, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub132pd
	{[4]byte{0x02, 0x9E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1141, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub132ps
	{[4]byte{0x02, 0x9E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1142, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub132sd
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1143, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1143, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub132ss
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1144, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1144, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub213pd
	{[4]byte{0x02, 0xAE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1145, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub213ps
	{[4]byte{0x02, 0xAE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1146, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub213sd
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1147, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1147, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub213ss
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1148, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xAF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1148, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub231pd
	{[4]byte{0x02, 0xBE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1149, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub231ps
	{[4]byte{0x02, 0xBE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1150, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub231sd
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1151, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1151, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub231ss
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1152, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1152, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub312pd
	{[4]byte{0x02, 0x9E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1153, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub312ps
	{[4]byte{0x02, 0x9E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1154, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub312sd
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1155, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1155, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub312ss
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1156, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0x9F}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1156, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub321pd
	{[4]byte{0x02, 0xBE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1157, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub321ps
	{[4]byte{0x02, 0xBE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.FMA, 0<<11 | 1158, 2<<4 | 15, argp_y0y0w0},
	// vfnmsub321sd
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 0<<11 | 1159, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.FMA, 1<<11 | 1159, 2<<4 | 15, argp_yoyoyo},
	// vfnmsub321ss
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 0<<11 | 1160, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x02, 0xBF}, flags.VEX_OP | flags.PREF_66, feats.FMA, 1<<11 | 1160, 2<<4 | 15, argp_yoyoyo},
	// vfnmsubpd
	{[4]byte{0x03, 0x7D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 0<<11 | 1161, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x7D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1161, 2<<4 | 15, argp_y0y0w0y0},
	// vfnmsubps
	{[4]byte{0x03, 0x7C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1162, 2<<4 | 15, argp_y0y0y0w0},
	{[4]byte{0x03, 0x7C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1162, 2<<4 | 15, argp_y0y0w0y0},
	// vfnmsubsd
	{[4]byte{0x03, 0x7F}, flags.VEX_OP | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1163, 2<<4 | 15, argp_yoyomqyo},
	{[4]byte{0x03, 0x7F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 1<<11 | 1163, 2<<4 | 15, argp_yoyoyomq},
	{[4]byte{0x03, 0x7F}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AMD | feats.SSE5, 2<<11 | 1163, 2<<4 | 15, argp_yoyoyoyo},
	// vfnmsubss
	{[4]byte{0x03, 0x7E}, flags.VEX_OP | flags.PREF_66, feats.SSE5 | feats.AMD, 0<<11 | 1164, 2<<4 | 15, argp_yoyomdyo},
	{[4]byte{0x03, 0x7E}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 1<<11 | 1164, 2<<4 | 15, argp_yoyoyomd},
	{[4]byte{0x03, 0x7E}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.SSE5 | feats.AMD, 2<<11 | 1164, 2<<4 | 15, argp_yoyoyoyo},
	// vfrczpd
	{[4]byte{0x09, 0x81}, flags.XOP_OP | flags.AUTO_VEXL, feats.SSE5 | feats.AMD, 0<<11 | 1165, 2<<4 | 15, argp_y0w0},
	// vfrczps
	{[4]byte{0x09, 0x80}, flags.XOP_OP | flags.AUTO_VEXL, feats.AMD | feats.SSE5, 0<<11 | 1166, 2<<4 | 15, argp_y0w0},
	// vfrczsd
	{[4]byte{0x09, 0x83}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1167, 2<<4 | 15, argp_yomq},
	{[4]byte{0x09, 0x83}, flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1167, 2<<4 | 15, argp_yoyo},
	// vfrczss
	{[4]byte{0x09, 0x82}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1168, 2<<4 | 15, argp_yomd},
	{[4]byte{0x09, 0x82}, flags.XOP_OP, feats.AMD | feats.SSE5, 1<<11 | 1168, 2<<4 | 15, argp_yoyo},
	// vgatherdpd
	{[4]byte{0x02, 0x92}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1169, 2<<4 | 15, argp_y0loy0},
	// vgatherdps
	{[4]byte{0x02, 0x92}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1170, 2<<4 | 15, argp_y0k0y0},
	// vgatherqpd
	{[4]byte{0x02, 0x93}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1171, 2<<4 | 15, argp_y0l0y0},
	// vgatherqps
	{[4]byte{0x02, 0x93}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1172, 2<<4 | 15, argp_yok0yo},
	// vhaddpd
	{[4]byte{0x01, 0x7C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1173, 2<<4 | 15, argp_y0y0w0},
	// vhaddps
	{[4]byte{0x01, 0x7C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 1174, 2<<4 | 15, argp_y0y0w0},
	// vhsubpd
	{[4]byte{0x01, 0x7D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1175, 2<<4 | 15, argp_y0y0w0},
	// vhsubps
	{[4]byte{0x01, 0x7D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 1176, 2<<4 | 15, argp_y0y0w0},
	// vinsertf128
	{[4]byte{0x03, 0x18}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1177, 2<<4 | 15, argp_yhyhwoib},
	// vinserti128
	{[4]byte{0x03, 0x38}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1178, 2<<4 | 15, argp_yhyhwoib},
	// vinsertps
	{[4]byte{0x03, 0x21}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1179, 2<<4 | 15, argp_yoyomdib},
	{[4]byte{0x03, 0x21}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1179, 2<<4 | 15, argp_yoyoyoib},
	// vlddqu
	{[4]byte{0x01, 0xF0}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 1180, 2<<4 | 15, argp_y0m0},
	// vldmxcsr
	{[4]byte{0x01, 0xAE}, flags.VEX_OP, feats.AVX, 0<<11 | 1181, 2<<4 | 2, argp_md},
	// vldqqu
	{[4]byte{0x01, 0xF0}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1182, 2<<4 | 15, argp_yhmh},
	// vmaskmovdqu
	{[4]byte{0x01, 0xF7}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1183, 2<<4 | 15, argp_yoyo},
	// vmaskmovpd
	{[4]byte{0x02, 0x2F}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1184, 2<<4 | 15, argp_m0y0y0},
	{[4]byte{0x02, 0x2D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1184, 2<<4 | 15, argp_y0y0m0},
	// vmaskmovps
	{[4]byte{0x02, 0x2E}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1185, 2<<4 | 15, argp_m0y0y0},
	{[4]byte{0x02, 0x2C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1185, 2<<4 | 15, argp_y0y0m0},
	// vmaxpd
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1186, 2<<4 | 15, argp_y0y0w0},
	// vmaxps
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1187, 2<<4 | 15, argp_y0y0w0},
	// vmaxsd
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1188, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1188, 2<<4 | 15, argp_yoyoyo},
	// vmaxss
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1189, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x5F}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1189, 2<<4 | 15, argp_yoyoyo},
	// vmcall
	{[4]byte{0x0F, 0x01, 0xC1}, 0, feats.VMX, 0<<11 | 1190, 3<<4 | 15, argp_},
	// vmclear
	{[4]byte{0x0F, 0xC7}, flags.PREF_66, feats.VMX, 0<<11 | 1191, 2<<4 | 6, argp_m1},
	// vmfunc
	{[4]byte{0x0F, 0x01, 0xD4}, 0, feats.VMX, 0<<11 | 1192, 3<<4 | 15, argp_},
	// vminpd
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1193, 2<<4 | 15, argp_y0y0w0},
	// vminps
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1194, 2<<4 | 15, argp_y0y0w0},
	// vminsd
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1195, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1195, 2<<4 | 15, argp_yoyoyo},
	// vminss
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1196, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x5D}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1196, 2<<4 | 15, argp_yoyoyo},
	// vmlaunch
	{[4]byte{0x0F, 0x01, 0xC2}, 0, feats.VMX, 0<<11 | 1197, 3<<4 | 15, argp_},
	// vmload
	{[4]byte{0x0F, 0x01, 0xDA}, 0, feats.AMD | feats.VMX, 0<<11 | 1198, 3<<4 | 15, argp_},
	// vmmcall
	{[4]byte{0x0F, 0x01, 0xD9}, 0, feats.AMD | feats.VMX, 0<<11 | 1199, 3<<4 | 15, argp_},
	// vmovapd
	{[4]byte{0x01, 0x28}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1200, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x29}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1200, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x29}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 2<<11 | 1200, 2<<4 | 15, argp_woyo},
	// vmovaps
	{[4]byte{0x01, 0x28}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1201, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x29}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR, feats.AVX, 1<<11 | 1201, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x29}, flags.VEX_OP | flags.ENC_MR, feats.AVX, 2<<11 | 1201, 2<<4 | 15, argp_woyo},
	// vmovd
	{[4]byte{0x01, 0x6E}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1202, 2<<4 | 15, argp_yovd},
	{[4]byte{0x01, 0x7E}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1202, 2<<4 | 15, argp_vdyo},
	// vmovddup
	{[4]byte{0x01, 0x12}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 1203, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x12}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1203, 2<<4 | 15, argp_yomq},
	// vmovdqa
	{[4]byte{0x01, 0x6F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1204, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x7F}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1204, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x7F}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 2<<11 | 1204, 2<<4 | 15, argp_woyo},
	// vmovdqu
	{[4]byte{0x01, 0x6F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 0<<11 | 1205, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x7F}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR | flags.PREF_F3, feats.AVX, 1<<11 | 1205, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x7F}, flags.VEX_OP | flags.ENC_MR | flags.PREF_F3, feats.AVX, 2<<11 | 1205, 2<<4 | 15, argp_woyo},
	// vmovhlps
	{[4]byte{0x01, 0x12}, flags.VEX_OP, feats.AVX, 0<<11 | 1206, 2<<4 | 15, argp_yoyoyo},
	// vmovhpd
	{[4]byte{0x01, 0x17}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1207, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x16}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1207, 2<<4 | 15, argp_yoyomq},
	// vmovhps
	{[4]byte{0x01, 0x17}, flags.VEX_OP | flags.ENC_MR, feats.AVX, 0<<11 | 1208, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x16}, flags.VEX_OP, feats.AVX, 1<<11 | 1208, 2<<4 | 15, argp_yoyomq},
	// vmovlhps
	{[4]byte{0x01, 0x16}, flags.VEX_OP, feats.AVX, 0<<11 | 1209, 2<<4 | 15, argp_yoyoyo},
	// vmovlpd
	{[4]byte{0x01, 0x13}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1210, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x12}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1210, 2<<4 | 15, argp_yoyomq},
	// vmovlps
	{[4]byte{0x01, 0x13}, flags.VEX_OP | flags.ENC_MR, feats.AVX, 0<<11 | 1211, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x12}, flags.VEX_OP, feats.AVX, 1<<11 | 1211, 2<<4 | 15, argp_yoyomq},
	// vmovmskpd
	{[4]byte{0x01, 0x50}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1212, 2<<4 | 15, argp_r0y0},
	// vmovmskps
	{[4]byte{0x01, 0x50}, flags.VEX_OP, feats.AVX, 0<<11 | 1213, 2<<4 | 15, argp_r0y0},
	// vmovntdq
	{[4]byte{0x01, 0xE7}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1214, 2<<4 | 15, argp_m0y0},
	// vmovntdqa
	{[4]byte{0x02, 0x2A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1215, 2<<4 | 15, argp_y0m0},
	// vmovntpd
	{[4]byte{0x01, 0x2B}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1216, 2<<4 | 15, argp_m0y0},
	// vmovntps
	{[4]byte{0x01, 0x2B}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR, feats.AVX, 0<<11 | 1217, 2<<4 | 15, argp_m0y0},
	// vmovntqq
	{[4]byte{0x01, 0xE7}, flags.WITH_VEXL | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1218, 2<<4 | 15, argp_mhyh},
	// vmovq
	{[4]byte{0x01, 0xD6}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1219, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x7E}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1219, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0x6E}, flags.WITH_REXW | flags.VEX_OP | flags.PREF_66, feats.AVX, 2<<11 | 1219, 2<<4 | 15, argp_yovq},
	{[4]byte{0x01, 0x7E}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 3<<11 | 1219, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x01, 0xD6}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 4<<11 | 1219, 2<<4 | 15, argp_yoyo},
	{[4]byte{0x01, 0x7E}, flags.WITH_REXW | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 5<<11 | 1219, 2<<4 | 15, argp_vqyo},
	// vmovqqa
	{[4]byte{0x01, 0x6F}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1220, 2<<4 | 15, argp_yhwh},
	{[4]byte{0x01, 0x7F}, flags.WITH_VEXL | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1220, 2<<4 | 15, argp_whyh},
	// vmovqqu
	{[4]byte{0x01, 0x6F}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1221, 2<<4 | 15, argp_yhwh},
	{[4]byte{0x01, 0x7F}, flags.WITH_VEXL | flags.VEX_OP | flags.ENC_MR | flags.PREF_F3, feats.AVX, 1<<11 | 1221, 2<<4 | 15, argp_whyh},
	// vmovsd
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_MR | flags.PREF_F2, feats.AVX, 0<<11 | 1222, 2<<4 | 15, argp_mqyo},
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1222, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 2<<11 | 1222, 2<<4 | 15, argp_yoyoyo},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_VM | flags.PREF_F2, feats.AVX, 3<<11 | 1222, 2<<4 | 15, argp_yoyoyo},
	// vmovshdup
	{[4]byte{0x01, 0x16}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 0<<11 | 1223, 2<<4 | 15, argp_y0w0},
	// vmovsldup
	{[4]byte{0x01, 0x12}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 0<<11 | 1224, 2<<4 | 15, argp_y0w0},
	// vmovss
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_MR | flags.PREF_F3, feats.AVX, 0<<11 | 1225, 2<<4 | 15, argp_mdyo},
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1225, 2<<4 | 15, argp_yomd},
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 2<<11 | 1225, 2<<4 | 15, argp_yoyoyo},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_VM | flags.PREF_F3, feats.AVX, 3<<11 | 1225, 2<<4 | 15, argp_yoyoyo},
	// vmovupd
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1226, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1226, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 2<<11 | 1226, 2<<4 | 15, argp_woyo},
	// vmovups
	{[4]byte{0x01, 0x10}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1227, 2<<4 | 15, argp_y0w0},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.WITH_VEXL | flags.ENC_MR, feats.AVX, 1<<11 | 1227, 2<<4 | 15, argp_whyh},
	{[4]byte{0x01, 0x11}, flags.VEX_OP | flags.ENC_MR, feats.AVX, 2<<11 | 1227, 2<<4 | 15, argp_woyo},
	// vmpsadbw
	{[4]byte{0x03, 0x42}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1228, 2<<4 | 15, argp_y0y0w0ib},
	// vmptrld
	{[4]byte{0x0F, 0xC7}, 0, feats.VMX, 0<<11 | 1229, 2<<4 | 6, argp_m1},
	// vmptrst
	{[4]byte{0x0F, 0xC7}, 0, feats.VMX, 0<<11 | 1230, 2<<4 | 7, argp_m1},
	// vmread
	{[4]byte{0x0F, 0x78}, flags.ENC_MR, feats.VMX, 0<<11 | 1231, 2<<4 | 15, argp_vqrq},
	// vmresume
	{[4]byte{0x0F, 0x01, 0xC3}, 0, feats.VMX, 0<<11 | 1232, 3<<4 | 15, argp_},
	// vmrun
	{[4]byte{0x0F, 0x01, 0xD8}, 0, feats.AMD | feats.VMX, 0<<11 | 1233, 3<<4 | 15, argp_},
	// vmsave
	{[4]byte{0x0F, 0x01, 0xDB}, 0, feats.VMX | feats.AMD, 0<<11 | 1234, 3<<4 | 15, argp_},
	// vmulpd
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1235, 2<<4 | 15, argp_y0y0w0},
	// vmulps
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1236, 2<<4 | 15, argp_y0y0w0},
	// vmulsd
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1237, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1237, 2<<4 | 15, argp_yoyoyo},
	// vmulss
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1238, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x59}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1238, 2<<4 | 15, argp_yoyoyo},
	// vmwrite
	{[4]byte{0x0F, 0x79}, 0, feats.VMX, 0<<11 | 1239, 2<<4 | 15, argp_rqvq},
	// vmxoff
	{[4]byte{0x0F, 0x01, 0xC4}, 0, feats.VMX, 0<<11 | 1240, 3<<4 | 15, argp_},
	// vmxon
	{[4]byte{0x0F, 0xC7}, flags.PREF_F3, feats.VMX, 0<<11 | 1241, 2<<4 | 6, argp_m1},
	// vorpd
	{[4]byte{0x01, 0x56}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1242, 2<<4 | 15, argp_y0y0w0},
	// vorps
	{[4]byte{0x01, 0x56}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1243, 2<<4 | 15, argp_y0y0w0},
	// vpabsb
	{[4]byte{0x02, 0x1C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1244, 2<<4 | 15, argp_y0w0},
	// vpabsd
	{[4]byte{0x02, 0x1E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1245, 2<<4 | 15, argp_y0w0},
	// vpabsw
	{[4]byte{0x02, 0x1D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1246, 2<<4 | 15, argp_y0w0},
	// vpackssdw
	{[4]byte{0x01, 0x6B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1247, 2<<4 | 15, argp_y0y0w0},
	// vpacksswb
	{[4]byte{0x01, 0x63}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1248, 2<<4 | 15, argp_y0y0w0},
	// vpackusdw
	{[4]byte{0x02, 0x2B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1249, 2<<4 | 15, argp_y0y0w0},
	// vpackuswb
	{[4]byte{0x01, 0x67}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1250, 2<<4 | 15, argp_y0y0w0},
	// vpaddb
	{[4]byte{0x01, 0xFC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1251, 2<<4 | 15, argp_y0y0w0},
	// vpaddd
	{[4]byte{0x01, 0xFE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1252, 2<<4 | 15, argp_y0y0w0},
	// vpaddq
	{[4]byte{0x01, 0xD4}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1253, 2<<4 | 15, argp_y0y0w0},
	// vpaddsb
	{[4]byte{0x01, 0xEC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1254, 2<<4 | 15, argp_y0y0w0},
	// vpaddsw
	{[4]byte{0x01, 0xED}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1255, 2<<4 | 15, argp_y0y0w0},
	// vpaddusb
	{[4]byte{0x01, 0xDC}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1256, 2<<4 | 15, argp_y0y0w0},
	// vpaddusw
	{[4]byte{0x01, 0xDD}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1257, 2<<4 | 15, argp_y0y0w0},
	// vpaddw
	{[4]byte{0x01, 0xFD}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1258, 2<<4 | 15, argp_y0y0w0},
	// vpalignr
	{[4]byte{0x03, 0x0F}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1259, 2<<4 | 15, argp_y0y0w0ib},
	// vpand
	{[4]byte{0x01, 0xDB}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1260, 2<<4 | 15, argp_y0y0w0},
	// vpandn
	{[4]byte{0x01, 0xDF}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1261, 2<<4 | 15, argp_y0y0w0},
	// vpavgb
	{[4]byte{0x01, 0xE0}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1262, 2<<4 | 15, argp_y0y0w0},
	// vpavgw
	{[4]byte{0x01, 0xE3}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1263, 2<<4 | 15, argp_y0y0w0},
	// vpblendd
	{[4]byte{0x03, 0x02}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1264, 2<<4 | 15, argp_y0y0w0ib},
	// vpblendvb
	{[4]byte{0x03, 0x4C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1265, 2<<4 | 15, argp_y0y0w0y0},
	// vpblendw
	{[4]byte{0x03, 0x0E}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1266, 2<<4 | 15, argp_y0y0w0ib},
	// vpbroadcastb
	{[4]byte{0x02, 0x78}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1267, 2<<4 | 15, argp_y0mb},
	{[4]byte{0x02, 0x78}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 1<<11 | 1267, 2<<4 | 15, argp_y0yo},
	// vpbroadcastd
	{[4]byte{0x02, 0x58}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1268, 2<<4 | 15, argp_y0md},
	{[4]byte{0x02, 0x58}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 1<<11 | 1268, 2<<4 | 15, argp_y0yo},
	// vpbroadcastq
	{[4]byte{0x02, 0x59}, flags.VEX_OP | flags.WITH_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1269, 2<<4 | 15, argp_yhmq},
	{[4]byte{0x02, 0x59}, flags.VEX_OP | flags.PREF_66, feats.AVX2, 1<<11 | 1269, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x59}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 2<<11 | 1269, 2<<4 | 15, argp_y0yo},
	// vpbroadcastw
	{[4]byte{0x02, 0x79}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1270, 2<<4 | 15, argp_y0mw},
	{[4]byte{0x02, 0x79}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 1<<11 | 1270, 2<<4 | 15, argp_y0yo},
	// vpclmulhqhqdq
	{[4]byte{0x03, 0x44, 0x11}, flags.VEX_OP | flags.PREF_66 | flags.IMM_OP, feats.AVX, 0<<11 | 1271, 3<<4 | 15, argp_yoyowo},
	// vpclmulhqlqdq
	{[4]byte{0x03, 0x44, 0x01}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 1272, 3<<4 | 15, argp_yoyowo},
	// vpclmullqhqdq
	{[4]byte{0x03, 0x44, 0x10}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 1273, 3<<4 | 15, argp_yoyowo},
	// vpclmullqlqdq
	{[4]byte{0x03, 0x44, 0x00}, flags.VEX_OP | flags.IMM_OP | flags.PREF_66, feats.AVX, 0<<11 | 1274, 3<<4 | 15, argp_yoyowo},
	// vpclmulqdq
	{[4]byte{0x03, 0x44}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1275, 2<<4 | 15, argp_yoyowoib},
	// vpcmov
	{[4]byte{0x08, 0xA2}, flags.XOP_OP | flags.AUTO_VEXL, feats.SSE5 | feats.AMD, 0<<11 | 1276, 2<<4 | 15, argp_y0y0w0y0},
	{[4]byte{0x08, 0xA2}, flags.XOP_OP | flags.AUTO_VEXL, feats.AMD | feats.SSE5, 1<<11 | 1276, 2<<4 | 15, argp_y0y0y0w0},
	// vpcmpeqb
	{[4]byte{0x01, 0x74}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1277, 2<<4 | 15, argp_y0y0w0},
	// vpcmpeqd
	{[4]byte{0x01, 0x76}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1278, 2<<4 | 15, argp_y0y0w0},
	// vpcmpeqq
	{[4]byte{0x02, 0x29}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1279, 2<<4 | 15, argp_y0y0w0},
	// vpcmpeqw
	{[4]byte{0x01, 0x75}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1280, 2<<4 | 15, argp_y0y0w0},
	// vpcmpestri
	{[4]byte{0x03, 0x61}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1281, 2<<4 | 15, argp_yowoib},
	// vpcmpestrm
	{[4]byte{0x03, 0x60}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1282, 2<<4 | 15, argp_yowoib},
	// vpcmpgtb
	{[4]byte{0x01, 0x64}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1283, 2<<4 | 15, argp_y0y0w0},
	// vpcmpgtd
	{[4]byte{0x01, 0x66}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1284, 2<<4 | 15, argp_y0y0w0},
	// vpcmpgtq
	{[4]byte{0x02, 0x37}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1285, 2<<4 | 15, argp_y0y0w0},
	// vpcmpgtw
	{[4]byte{0x01, 0x65}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1286, 2<<4 | 15, argp_y0y0w0},
	// vpcmpistri
	{[4]byte{0x03, 0x63}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1287, 2<<4 | 15, argp_yowoib},
	// vpcmpistrm
	{[4]byte{0x03, 0x62}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1288, 2<<4 | 15, argp_yowoib},
	// vpcomb
	{[4]byte{0x08, 0xCC}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1289, 2<<4 | 15, argp_yoyowoib},
	// vpcomd
	{[4]byte{0x08, 0xCE}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1290, 2<<4 | 15, argp_yoyowoib},
	// vpcomq
	{[4]byte{0x08, 0xCF}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1291, 2<<4 | 15, argp_yoyowoib},
	// vpcomub
	{[4]byte{0x08, 0xEC}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1292, 2<<4 | 15, argp_yoyowoib},
	// vpcomud
	{[4]byte{0x08, 0xEE}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1293, 2<<4 | 15, argp_yoyowoib},
	// vpcomuq
	{[4]byte{0x08, 0xEF}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1294, 2<<4 | 15, argp_yoyowoib},
	// vpcomuw
	{[4]byte{0x08, 0xED}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1295, 2<<4 | 15, argp_yoyowoib},
	// vpcomw
	{[4]byte{0x08, 0xCD}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1296, 2<<4 | 15, argp_yoyowoib},
	// vperm2f128
	{[4]byte{0x03, 0x06}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1297, 2<<4 | 15, argp_yhyhwhib},
	// vperm2i128
	{[4]byte{0x03, 0x46}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1298, 2<<4 | 15, argp_yhyhwhib},
	// vpermd
	{[4]byte{0x02, 0x36}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1299, 2<<4 | 15, argp_yhyhwh},
	// vpermilpd
	{[4]byte{0x02, 0x0D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1300, 2<<4 | 15, argp_y0y0w0},
	{[4]byte{0x03, 0x05}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1300, 2<<4 | 15, argp_y0w0ib},
	// vpermilps
	{[4]byte{0x02, 0x0C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1301, 2<<4 | 15, argp_y0y0w0},
	{[4]byte{0x03, 0x04}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1301, 2<<4 | 15, argp_y0w0ib},
	// vpermpd
	{[4]byte{0x03, 0x01}, flags.WITH_VEXL | flags.WITH_REXW | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1302, 2<<4 | 15, argp_yhwhib},
	// vpermps
	{[4]byte{0x02, 0x16}, flags.WITH_VEXL | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1303, 2<<4 | 15, argp_yhyhwh},
	// vpermq
	{[4]byte{0x03, 0x00}, flags.WITH_VEXL | flags.WITH_REXW | flags.VEX_OP | flags.PREF_66, feats.AVX2, 0<<11 | 1304, 2<<4 | 15, argp_yhwhib},
	// vpextrb
	{[4]byte{0x03, 0x14}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1305, 2<<4 | 15, argp_mbyoib},
	{[4]byte{0x03, 0x14}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1305, 2<<4 | 15, argp_rdyoib},
	{[4]byte{0x03, 0x14}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 2<<11 | 1305, 2<<4 | 15, argp_rqyoib},
	// vpextrd
	{[4]byte{0x03, 0x16}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1306, 2<<4 | 15, argp_rqyoib},
	{[4]byte{0x03, 0x16}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 1<<11 | 1306, 2<<4 | 15, argp_vdyoib},
	// vpextrq
	{[4]byte{0x03, 0x16}, flags.WITH_REXW | flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1307, 2<<4 | 15, argp_vqyoib},
	// vpextrw
	{[4]byte{0x03, 0x15}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1308, 2<<4 | 15, argp_mwyoib},
	{[4]byte{0x01, 0xC5}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1308, 2<<4 | 15, argp_rdyoib},
	{[4]byte{0x03, 0x15}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 2<<11 | 1308, 2<<4 | 15, argp_rdyoib},
	{[4]byte{0x01, 0xC5}, flags.VEX_OP | flags.PREF_66, feats.AVX, 3<<11 | 1308, 2<<4 | 15, argp_rqyoib},
	{[4]byte{0x03, 0x15}, flags.VEX_OP | flags.ENC_MR | flags.PREF_66, feats.AVX, 4<<11 | 1308, 2<<4 | 15, argp_rqyoib},
	// vpgatherdd
	{[4]byte{0x02, 0x90}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1309, 2<<4 | 15, argp_y0k0y0},
	// vpgatherdq
	{[4]byte{0x02, 0x90}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1310, 2<<4 | 15, argp_y0loy0},
	// vpgatherqd
	{[4]byte{0x02, 0x91}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1311, 2<<4 | 15, argp_yok0yo},
	// vpgatherqq
	{[4]byte{0x02, 0x91}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX2, 0<<11 | 1312, 2<<4 | 15, argp_y0l0y0},
	// vphaddbd
	{[4]byte{0x09, 0xC2}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1313, 2<<4 | 15, argp_yowo},
	// vphaddbq
	{[4]byte{0x09, 0xC3}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1314, 2<<4 | 15, argp_yowo},
	// vphaddbw
	{[4]byte{0x09, 0xC1}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1315, 2<<4 | 15, argp_yowo},
	// vphaddd
	{[4]byte{0x02, 0x02}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1316, 2<<4 | 15, argp_y0y0w0},
	// vphadddq
	{[4]byte{0x09, 0xCB}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1317, 2<<4 | 15, argp_yowo},
	// vphaddsw
	{[4]byte{0x02, 0x03}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1318, 2<<4 | 15, argp_y0y0w0},
	// vphaddubd
	{[4]byte{0x09, 0xD2}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1319, 2<<4 | 15, argp_yowo},
	// vphaddubq
	{[4]byte{0x09, 0xD3}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1320, 2<<4 | 15, argp_yowo},
	// vphaddubw
	{[4]byte{0x09, 0xD1}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1321, 2<<4 | 15, argp_yowo},
	// vphaddudq
	{[4]byte{0x09, 0xDB}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1322, 2<<4 | 15, argp_yowo},
	// vphadduwd
	{[4]byte{0x09, 0xD6}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1323, 2<<4 | 15, argp_yowo},
	// vphadduwq
	{[4]byte{0x09, 0xD7}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1324, 2<<4 | 15, argp_yowo},
	// vphaddw
	{[4]byte{0x02, 0x01}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1325, 2<<4 | 15, argp_y0y0w0},
	// vphaddwd
	{[4]byte{0x09, 0xC6}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1326, 2<<4 | 15, argp_yowo},
	// vphaddwq
	{[4]byte{0x09, 0xC7}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1327, 2<<4 | 15, argp_yowo},
	// vphminposuw
	{[4]byte{0x02, 0x41}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1328, 2<<4 | 15, argp_yowo},
	// vphsubbw
	{[4]byte{0x09, 0xE1}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1329, 2<<4 | 15, argp_yowo},
	// vphsubd
	{[4]byte{0x02, 0x06}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1330, 2<<4 | 15, argp_y0y0w0},
	// vphsubdq
	{[4]byte{0x09, 0xE3}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1331, 2<<4 | 15, argp_yowo},
	// vphsubsw
	{[4]byte{0x02, 0x07}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1332, 2<<4 | 15, argp_y0y0w0},
	// vphsubw
	{[4]byte{0x02, 0x05}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1333, 2<<4 | 15, argp_y0y0w0},
	// vphsubwd
	{[4]byte{0x09, 0xE2}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1334, 2<<4 | 15, argp_yowo},
	// vpinsrb
	{[4]byte{0x03, 0x20}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1335, 2<<4 | 15, argp_yoyordib},
	{[4]byte{0x03, 0x20}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1335, 2<<4 | 15, argp_yoyovbib},
	// vpinsrd
	{[4]byte{0x03, 0x22}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1336, 2<<4 | 15, argp_yoyovdib},
	// vpinsrq
	{[4]byte{0x03, 0x22}, flags.VEX_OP | flags.WITH_REXW | flags.PREF_66, feats.AVX, 0<<11 | 1337, 2<<4 | 15, argp_yoyovqib},
	// vpinsrw
	{[4]byte{0x01, 0xC4}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1338, 2<<4 | 15, argp_yoyordib},
	{[4]byte{0x01, 0xC4}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1338, 2<<4 | 15, argp_yoyovwib},
	// vpmacsdd
	{[4]byte{0x08, 0x9E}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1339, 2<<4 | 15, argp_yoyowoyo},
	// vpmacsdqh
	{[4]byte{0x08, 0x9F}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1340, 2<<4 | 15, argp_yoyowoyo},
	// vpmacsdql
	{[4]byte{0x08, 0x97}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1341, 2<<4 | 15, argp_yoyowoyo},
	// vpmacssdd
	{[4]byte{0x08, 0x8E}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1342, 2<<4 | 15, argp_yoyowoyo},
	// vpmacssdqh
	{[4]byte{0x08, 0x8F}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1343, 2<<4 | 15, argp_yoyowoyo},
	// vpmacssdql
	{[4]byte{0x08, 0x87}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1344, 2<<4 | 15, argp_yoyowoyo},
	// vpmacsswd
	{[4]byte{0x08, 0x86}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1345, 2<<4 | 15, argp_yoyowoyo},
	// vpmacssww
	{[4]byte{0x08, 0x85}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1346, 2<<4 | 15, argp_yoyowoyo},
	// vpmacswd
	{[4]byte{0x08, 0x96}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1347, 2<<4 | 15, argp_yoyowoyo},
	// vpmacsww
	{[4]byte{0x08, 0x95}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1348, 2<<4 | 15, argp_yoyowoyo},
	// vpmadcsswd
	{[4]byte{0x08, 0xA6}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1349, 2<<4 | 15, argp_yoyowoyo},
	// vpmadcswd
	{[4]byte{0x08, 0xB6}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1350, 2<<4 | 15, argp_yoyowoyo},
	// vpmaddubsw
	{[4]byte{0x02, 0x04}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1351, 2<<4 | 15, argp_y0y0w0},
	// vpmaddwd
	{[4]byte{0x01, 0xF5}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1352, 2<<4 | 15, argp_y0y0w0},
	// vpmaskmovd
	{[4]byte{0x02, 0x8E}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX2, 0<<11 | 1353, 2<<4 | 15, argp_m0y0y0},
	{[4]byte{0x02, 0x8C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 1<<11 | 1353, 2<<4 | 15, argp_y0y0m0},
	// vpmaskmovq
	{[4]byte{0x02, 0x8E}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX2, 0<<11 | 1354, 2<<4 | 15, argp_m0y0y0},
	{[4]byte{0x02, 0x8C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 1<<11 | 1354, 2<<4 | 15, argp_y0y0m0},
	// vpmaxsb
	{[4]byte{0x02, 0x3C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1355, 2<<4 | 15, argp_y0y0w0},
	// vpmaxsd
	{[4]byte{0x02, 0x3D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1356, 2<<4 | 15, argp_y0y0w0},
	// vpmaxsw
	{[4]byte{0x01, 0xEE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1357, 2<<4 | 15, argp_y0y0w0},
	// vpmaxub
	{[4]byte{0x01, 0xDE}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1358, 2<<4 | 15, argp_y0y0w0},
	// vpmaxud
	{[4]byte{0x02, 0x3F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1359, 2<<4 | 15, argp_y0y0w0},
	// vpmaxuw
	{[4]byte{0x02, 0x3E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1360, 2<<4 | 15, argp_y0y0w0},
	// vpminsb
	{[4]byte{0x02, 0x38}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1361, 2<<4 | 15, argp_y0y0w0},
	// vpminsd
	{[4]byte{0x02, 0x39}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1362, 2<<4 | 15, argp_y0y0w0},
	// vpminsw
	{[4]byte{0x01, 0xEA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1363, 2<<4 | 15, argp_y0y0w0},
	// vpminub
	{[4]byte{0x01, 0xDA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1364, 2<<4 | 15, argp_y0y0w0},
	// vpminud
	{[4]byte{0x02, 0x3B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1365, 2<<4 | 15, argp_y0y0w0},
	// vpminuw
	{[4]byte{0x02, 0x3A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1366, 2<<4 | 15, argp_y0y0w0},
	// vpmovmskb
	{[4]byte{0x01, 0xD7}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1367, 2<<4 | 15, argp_r0y0},
	// vpmovsxbd
	{[4]byte{0x02, 0x21}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1368, 2<<4 | 15, argp_yomd},
	{[4]byte{0x02, 0x21}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1368, 2<<4 | 15, argp_y0yo},
	// vpmovsxbq
	{[4]byte{0x02, 0x22}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1369, 2<<4 | 15, argp_y0mw},
	{[4]byte{0x02, 0x22}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1369, 2<<4 | 15, argp_y0yo},
	// vpmovsxbw
	{[4]byte{0x02, 0x20}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1370, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x20}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1370, 2<<4 | 15, argp_y0wo},
	// vpmovsxdq
	{[4]byte{0x02, 0x25}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1371, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x25}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1371, 2<<4 | 15, argp_y0wo},
	// vpmovsxwd
	{[4]byte{0x02, 0x23}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1372, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x23}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1372, 2<<4 | 15, argp_y0wo},
	// vpmovsxwq
	{[4]byte{0x02, 0x24}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1373, 2<<4 | 15, argp_yomd},
	{[4]byte{0x02, 0x24}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1373, 2<<4 | 15, argp_y0yo},
	// vpmovzxbd
	{[4]byte{0x02, 0x31}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1374, 2<<4 | 15, argp_yomd},
	{[4]byte{0x02, 0x31}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1374, 2<<4 | 15, argp_y0yo},
	// vpmovzxbq
	{[4]byte{0x02, 0x32}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1375, 2<<4 | 15, argp_y0mw},
	{[4]byte{0x02, 0x32}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1375, 2<<4 | 15, argp_y0yo},
	// vpmovzxbw
	{[4]byte{0x02, 0x30}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1376, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x30}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1376, 2<<4 | 15, argp_y0wo},
	// vpmovzxdq
	{[4]byte{0x02, 0x35}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1377, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x35}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1377, 2<<4 | 15, argp_y0wo},
	// vpmovzxwd
	{[4]byte{0x02, 0x33}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1378, 2<<4 | 15, argp_yomq},
	{[4]byte{0x02, 0x33}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1378, 2<<4 | 15, argp_y0wo},
	// vpmovzxwq
	{[4]byte{0x02, 0x34}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1379, 2<<4 | 15, argp_yomd},
	{[4]byte{0x02, 0x34}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1379, 2<<4 | 15, argp_y0yo},
	// vpmuldq
	{[4]byte{0x02, 0x28}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1380, 2<<4 | 15, argp_y0y0w0},
	// vpmulhrsw
	{[4]byte{0x02, 0x0B}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1381, 2<<4 | 15, argp_y0y0w0},
	// vpmulhuw
	{[4]byte{0x01, 0xE4}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1382, 2<<4 | 15, argp_y0y0w0},
	// vpmulhw
	{[4]byte{0x01, 0xE5}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1383, 2<<4 | 15, argp_y0y0w0},
	// vpmulld
	{[4]byte{0x02, 0x40}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1384, 2<<4 | 15, argp_y0y0w0},
	// vpmullw
	{[4]byte{0x01, 0xD5}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1385, 2<<4 | 15, argp_y0y0w0},
	// vpmuludq
	{[4]byte{0x01, 0xF4}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1386, 2<<4 | 15, argp_y0y0w0},
	// vpor
	{[4]byte{0x01, 0xEB}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1387, 2<<4 | 15, argp_y0y0w0},
	// vpperm
	{[4]byte{0x08, 0xA3}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1388, 2<<4 | 15, argp_yoyowoyo},
	{[4]byte{0x08, 0xA3}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1388, 2<<4 | 15, argp_yoyoyowo},
	// vprotb
	{[4]byte{0x08, 0xC0}, flags.XOP_OP, feats.SSE5 | feats.AMD, 0<<11 | 1389, 2<<4 | 15, argp_yowoib},
	{[4]byte{0x09, 0x90}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 1<<11 | 1389, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x90}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 2<<11 | 1389, 2<<4 | 15, argp_yoyowo},
	// vprotd
	{[4]byte{0x08, 0xC2}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1390, 2<<4 | 15, argp_yowoib},
	{[4]byte{0x09, 0x92}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 1<<11 | 1390, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x92}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 2<<11 | 1390, 2<<4 | 15, argp_yoyowo},
	// vprotq
	{[4]byte{0x08, 0xC3}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1391, 2<<4 | 15, argp_yowoib},
	{[4]byte{0x09, 0x93}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 1<<11 | 1391, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x93}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 2<<11 | 1391, 2<<4 | 15, argp_yoyowo},
	// vprotw
	{[4]byte{0x08, 0xC1}, flags.XOP_OP, feats.AMD | feats.SSE5, 0<<11 | 1392, 2<<4 | 15, argp_yowoib},
	{[4]byte{0x09, 0x91}, flags.XOP_OP | flags.ENC_MR, feats.SSE5 | feats.AMD, 1<<11 | 1392, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x91}, flags.WITH_REXW | flags.XOP_OP, feats.AMD | feats.SSE5, 2<<11 | 1392, 2<<4 | 15, argp_yoyowo},
	// vpsadbw
	{[4]byte{0x01, 0xF6}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1393, 2<<4 | 15, argp_y0y0w0},
	// vpshab
	{[4]byte{0x09, 0x98}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 0<<11 | 1394, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x98}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1394, 2<<4 | 15, argp_yoyowo},
	// vpshad
	{[4]byte{0x09, 0x9A}, flags.XOP_OP | flags.ENC_MR, feats.SSE5 | feats.AMD, 0<<11 | 1395, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x9A}, flags.WITH_REXW | flags.XOP_OP, feats.AMD | feats.SSE5, 1<<11 | 1395, 2<<4 | 15, argp_yoyowo},
	// vpshaq
	{[4]byte{0x09, 0x9B}, flags.XOP_OP | flags.ENC_MR, feats.SSE5 | feats.AMD, 0<<11 | 1396, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x9B}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1396, 2<<4 | 15, argp_yoyowo},
	// vpshaw
	{[4]byte{0x09, 0x99}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 0<<11 | 1397, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x99}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1397, 2<<4 | 15, argp_yoyowo},
	// vpshlb
	{[4]byte{0x09, 0x94}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 0<<11 | 1398, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x94}, flags.WITH_REXW | flags.XOP_OP, feats.AMD | feats.SSE5, 1<<11 | 1398, 2<<4 | 15, argp_yoyowo},
	// vpshld
	{[4]byte{0x09, 0x96}, flags.XOP_OP | flags.ENC_MR, feats.SSE5 | feats.AMD, 0<<11 | 1399, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x96}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1399, 2<<4 | 15, argp_yoyowo},
	// vpshlq
	{[4]byte{0x09, 0x97}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 0<<11 | 1400, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x97}, flags.WITH_REXW | flags.XOP_OP, feats.AMD | feats.SSE5, 1<<11 | 1400, 2<<4 | 15, argp_yoyowo},
	// vpshlw
	{[4]byte{0x09, 0x95}, flags.XOP_OP | flags.ENC_MR, feats.AMD | feats.SSE5, 0<<11 | 1401, 2<<4 | 15, argp_yowoyo},
	{[4]byte{0x09, 0x95}, flags.WITH_REXW | flags.XOP_OP, feats.SSE5 | feats.AMD, 1<<11 | 1401, 2<<4 | 15, argp_yoyowo},
	// vpshufb
	{[4]byte{0x02, 0x00}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1402, 2<<4 | 15, argp_y0y0w0},
	// vpshufd
	{[4]byte{0x01, 0x70}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1403, 2<<4 | 15, argp_y0w0ib},
	// vpshufhw
	{[4]byte{0x01, 0x70}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F3, feats.AVX, 0<<11 | 1404, 2<<4 | 15, argp_y0w0ib},
	// vpshuflw
	{[4]byte{0x01, 0x70}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_F2, feats.AVX, 0<<11 | 1405, 2<<4 | 15, argp_y0w0ib},
	// vpsignb
	{[4]byte{0x02, 0x08}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1406, 2<<4 | 15, argp_y0y0w0},
	// vpsignd
	{[4]byte{0x02, 0x0A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1407, 2<<4 | 15, argp_y0y0w0},
	// vpsignw
	{[4]byte{0x02, 0x09}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1408, 2<<4 | 15, argp_y0y0w0},
	// vpslld
	{[4]byte{0x01, 0x72}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1409, 2<<4 | 6, argp_y0y0ib},
	{[4]byte{0x01, 0xF2}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1409, 2<<4 | 15, argp_y0y0wo},
	// vpslldq
	{[4]byte{0x01, 0x73}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1410, 2<<4 | 7, argp_y0y0ib},
	// vpsllq
	{[4]byte{0x01, 0x73}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1411, 2<<4 | 6, argp_y0y0ib},
	{[4]byte{0x01, 0xF3}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1411, 2<<4 | 15, argp_y0y0wo},
	// vpsllvd
	{[4]byte{0x02, 0x47}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1412, 2<<4 | 15, argp_y0y0w0},
	// vpsllvq
	{[4]byte{0x02, 0x47}, flags.VEX_OP | flags.AUTO_VEXL | flags.WITH_REXW | flags.PREF_66, feats.AVX2, 0<<11 | 1413, 2<<4 | 15, argp_y0y0w0},
	// vpsllw
	{[4]byte{0x01, 0x71}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1414, 2<<4 | 6, argp_y0y0ib},
	{[4]byte{0x01, 0xF1}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1414, 2<<4 | 15, argp_y0y0wo},
	// vpsrad
	{[4]byte{0x01, 0x72}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1415, 2<<4 | 4, argp_y0y0ib},
	{[4]byte{0x01, 0xE2}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1415, 2<<4 | 15, argp_y0y0wo},
	// vpsravd
	{[4]byte{0x02, 0x46}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1416, 2<<4 | 15, argp_y0y0w0},
	// vpsraw
	{[4]byte{0x01, 0x71}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1417, 2<<4 | 4, argp_y0y0ib},
	{[4]byte{0x01, 0xE1}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1417, 2<<4 | 15, argp_y0y0wo},
	// vpsrld
	{[4]byte{0x01, 0x72}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1418, 2<<4 | 2, argp_y0y0ib},
	{[4]byte{0x01, 0xD2}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1418, 2<<4 | 15, argp_y0y0wo},
	// vpsrldq
	{[4]byte{0x01, 0x73}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1419, 2<<4 | 3, argp_y0y0ib},
	// vpsrlq
	{[4]byte{0x01, 0x73}, flags.VEX_OP | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1420, 2<<4 | 2, argp_y0y0ib},
	{[4]byte{0x01, 0xD3}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1420, 2<<4 | 15, argp_y0y0wo},
	// vpsrlvd
	{[4]byte{0x02, 0x45}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX2, 0<<11 | 1421, 2<<4 | 15, argp_y0y0w0},
	// vpsrlvq
	{[4]byte{0x02, 0x45}, flags.VEX_OP | flags.AUTO_VEXL | flags.WITH_REXW | flags.PREF_66, feats.AVX2, 0<<11 | 1422, 2<<4 | 15, argp_y0y0w0},
	// vpsrlw
	{[4]byte{0x01, 0x71}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_VM | flags.PREF_66, feats.AVX, 0<<11 | 1423, 2<<4 | 2, argp_y0y0ib},
	{[4]byte{0x01, 0xD1}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 1<<11 | 1423, 2<<4 | 15, argp_y0y0wo},
	// vpsubb
	{[4]byte{0x01, 0xF8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1424, 2<<4 | 15, argp_y0y0w0},
	// vpsubd
	{[4]byte{0x01, 0xFA}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1425, 2<<4 | 15, argp_y0y0w0},
	// vpsubq
	{[4]byte{0x01, 0xFB}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1426, 2<<4 | 15, argp_y0y0w0},
	// vpsubsb
	{[4]byte{0x01, 0xE8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1427, 2<<4 | 15, argp_y0y0w0},
	// vpsubsw
	{[4]byte{0x01, 0xE9}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1428, 2<<4 | 15, argp_y0y0w0},
	// vpsubusb
	{[4]byte{0x01, 0xD8}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1429, 2<<4 | 15, argp_y0y0w0},
	// vpsubusw
	{[4]byte{0x01, 0xD9}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1430, 2<<4 | 15, argp_y0y0w0},
	// vpsubw
	{[4]byte{0x01, 0xF9}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1431, 2<<4 | 15, argp_y0y0w0},
	// vptest
	{[4]byte{0x02, 0x17}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1432, 2<<4 | 15, argp_y0w0},
	// vpunpckhbw
	{[4]byte{0x01, 0x68}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1433, 2<<4 | 15, argp_y0y0w0},
	// vpunpckhdq
	{[4]byte{0x01, 0x6A}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1434, 2<<4 | 15, argp_y0y0w0},
	// vpunpckhqdq
	{[4]byte{0x01, 0x6D}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1435, 2<<4 | 15, argp_y0y0w0},
	// vpunpckhwd
	{[4]byte{0x01, 0x69}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1436, 2<<4 | 15, argp_y0y0w0},
	// vpunpcklbw
	{[4]byte{0x01, 0x60}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1437, 2<<4 | 15, argp_y0y0w0},
	// vpunpckldq
	{[4]byte{0x01, 0x62}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1438, 2<<4 | 15, argp_y0y0w0},
	// vpunpcklqdq
	{[4]byte{0x01, 0x6C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1439, 2<<4 | 15, argp_y0y0w0},
	// vpunpcklwd
	{[4]byte{0x01, 0x61}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1440, 2<<4 | 15, argp_y0y0w0},
	// vpxor
	{[4]byte{0x01, 0xEF}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1441, 2<<4 | 15, argp_y0y0w0},
	// vrcpps
	{[4]byte{0x01, 0x53}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1442, 2<<4 | 15, argp_y0w0},
	// vrcpss
	{[4]byte{0x01, 0x53}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1443, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x53}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1443, 2<<4 | 15, argp_yoyoyo},
	// vroundpd
	{[4]byte{0x03, 0x09}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1444, 2<<4 | 15, argp_y0w0ib},
	// vroundps
	{[4]byte{0x03, 0x08}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1445, 2<<4 | 15, argp_y0w0ib},
	// vroundsd
	{[4]byte{0x03, 0x0B}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1446, 2<<4 | 15, argp_yoyomqib},
	{[4]byte{0x03, 0x0B}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1446, 2<<4 | 15, argp_yoyoyoib},
	// vroundss
	{[4]byte{0x03, 0x0A}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1447, 2<<4 | 15, argp_yoyomdib},
	{[4]byte{0x03, 0x0A}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1447, 2<<4 | 15, argp_yoyoyoib},
	// vrsqrtps
	{[4]byte{0x01, 0x52}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1448, 2<<4 | 15, argp_y0w0},
	// vrsqrtss
	{[4]byte{0x01, 0x52}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1449, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x52}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1449, 2<<4 | 15, argp_yoyoyo},
	// vshufpd
	{[4]byte{0x01, 0xC6}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR | flags.PREF_66, feats.AVX, 0<<11 | 1450, 2<<4 | 15, argp_y0y0w0ib},
	// vshufps
	{[4]byte{0x01, 0xC6}, flags.VEX_OP | flags.AUTO_VEXL | flags.ENC_MR, feats.AVX, 0<<11 | 1451, 2<<4 | 15, argp_y0y0w0ib},
	// vsqrtpd
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1452, 2<<4 | 15, argp_y0w0},
	// vsqrtps
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1453, 2<<4 | 15, argp_y0w0},
	// vsqrtsd
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1454, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1454, 2<<4 | 15, argp_yoyoyo},
	// vsqrtss
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1455, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x51}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1455, 2<<4 | 15, argp_yoyoyo},
	// vstmxcsr
	{[4]byte{0x01, 0xAE}, flags.VEX_OP, feats.AVX, 0<<11 | 1456, 2<<4 | 3, argp_md},
	// vsubpd
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1457, 2<<4 | 15, argp_y0y0w0},
	// vsubps
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1458, 2<<4 | 15, argp_y0y0w0},
	// vsubsd
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 0<<11 | 1459, 2<<4 | 15, argp_yoyomq},
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.PREF_F2, feats.AVX, 1<<11 | 1459, 2<<4 | 15, argp_yoyoyo},
	// vsubss
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 0<<11 | 1460, 2<<4 | 15, argp_yoyomd},
	{[4]byte{0x01, 0x5C}, flags.VEX_OP | flags.PREF_F3, feats.AVX, 1<<11 | 1460, 2<<4 | 15, argp_yoyoyo},
	// vtestpd
	{[4]byte{0x02, 0x0F}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1461, 2<<4 | 15, argp_y0w0},
	// vtestps
	{[4]byte{0x02, 0x0E}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1462, 2<<4 | 15, argp_y0w0},
	// vucomisd
	{[4]byte{0x01, 0x2E}, flags.VEX_OP | flags.PREF_66, feats.AVX, 0<<11 | 1463, 2<<4 | 15, argp_yomq},
	{[4]byte{0x01, 0x2E}, flags.VEX_OP | flags.PREF_66, feats.AVX, 1<<11 | 1463, 2<<4 | 15, argp_yoyo},
	// vucomiss
	{[4]byte{0x01, 0x2E}, flags.VEX_OP, feats.AVX, 0<<11 | 1464, 2<<4 | 15, argp_yomd},
	{[4]byte{0x01, 0x2E}, flags.VEX_OP, feats.AVX, 1<<11 | 1464, 2<<4 | 15, argp_yoyo},
	// vunpckhpd
	{[4]byte{0x01, 0x15}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1465, 2<<4 | 15, argp_y0y0w0},
	// vunpckhps
	{[4]byte{0x01, 0x15}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1466, 2<<4 | 15, argp_y0y0w0},
	// vunpcklpd
	{[4]byte{0x01, 0x14}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1467, 2<<4 | 15, argp_y0y0w0},
	// vunpcklps
	{[4]byte{0x01, 0x14}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1468, 2<<4 | 15, argp_y0y0w0},
	// vxorpd
	{[4]byte{0x01, 0x57}, flags.VEX_OP | flags.AUTO_VEXL | flags.PREF_66, feats.AVX, 0<<11 | 1469, 2<<4 | 15, argp_y0y0w0},
	// vxorps
	{[4]byte{0x01, 0x57}, flags.VEX_OP | flags.AUTO_VEXL, feats.AVX, 0<<11 | 1470, 2<<4 | 15, argp_y0y0w0},
	// vzeroall
	{[4]byte{0x01, 0x77}, flags.WITH_VEXL | flags.VEX_OP, feats.AVX, 0<<11 | 1471, 2<<4 | 15, argp_},
	// vzeroupper
	{[4]byte{0x01, 0x77}, flags.VEX_OP, feats.AVX, 0<<11 | 1472, 2<<4 | 15, argp_},
	// wbinvd
	{[4]byte{0x0F, 0x09}, 0, 0, 0<<11 | 1473, 2<<4 | 15, argp_},
	// wrfsbase
	{[4]byte{0x0F, 0xAE}, flags.PREF_F3, 0, 0<<11 | 1474, 2<<4 | 2, argp_rd},
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW | flags.PREF_F3, 0, 1<<11 | 1474, 2<<4 | 2, argp_rq},
	// wrgsbase
	{[4]byte{0x0F, 0xAE}, flags.PREF_F3, 0, 0<<11 | 1475, 2<<4 | 3, argp_rd},
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW | flags.PREF_F3, 0, 1<<11 | 1475, 2<<4 | 3, argp_rq},
	// wrmsr
	{[4]byte{0x0F, 0x30}, 0, 0, 0<<11 | 1476, 2<<4 | 15, argp_},
	// wrpkru
	{[4]byte{0x0F, 0x01, 0xEF}, 0, 0, 0<<11 | 1477, 3<<4 | 15, argp_},
	// wrshr
	{[4]byte{0x0F, 0x37}, 0, feats.CYRIX, 0<<11 | 1478, 2<<4 | 0, argp_vd},
	// xabort
	{[4]byte{0xC6, 0xF8}, 0, feats.RTM, 0<<11 | 1479, 2<<4 | 15, argp_ib},
	// xadd
	{[4]byte{0x0F, 0xC0}, flags.LOCK | flags.ENC_MR, 0, 0<<11 | 1480, 2<<4 | 15, argp_mbrb},
	{[4]byte{0x0F, 0xC0}, flags.ENC_MR, 0, 1<<11 | 1480, 2<<4 | 15, argp_rbrb},
	{[4]byte{0x0F, 0xC1}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 2<<11 | 1480, 2<<4 | 15, argp_m0r0},
	{[4]byte{0x0F, 0xC1}, flags.AUTO_SIZE | flags.ENC_MR, 0, 3<<11 | 1480, 2<<4 | 15, argp_r0r0},
	// xbegin
	{[4]byte{0xC7, 0xF8}, 0, feats.RTM, 0<<11 | 1481, 2<<4 | 15, argp_od},
	// xchg
	{[4]byte{0x86}, flags.LOCK | flags.ENC_MR, 0, 0<<11 | 1482, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x86}, flags.LOCK, 0, 1<<11 | 1482, 1<<4 | 15, argp_rbmb},
	{[4]byte{0x86}, 0, 0, 2<<11 | 1482, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x86}, flags.ENC_MR, 0, 3<<11 | 1482, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x90}, flags.AUTO_SIZE | flags.SHORT_ARG, 0, 4<<11 | 1482, 1<<4 | 15, argp_A0r0},
	{[4]byte{0x87}, flags.AUTO_SIZE | flags.ENC_MR, 0, 5<<11 | 1482, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x90}, flags.AUTO_SIZE | flags.SHORT_ARG, 0, 6<<11 | 1482, 1<<4 | 15, argp_r0A0},
	{[4]byte{0x87}, flags.AUTO_SIZE, 0, 7<<11 | 1482, 1<<4 | 15, argp_r0m0},
	{[4]byte{0x87}, flags.AUTO_SIZE, 0, 8<<11 | 1482, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x87}, flags.AUTO_SIZE | flags.ENC_MR, 0, 9<<11 | 1482, 1<<4 | 15, argp_r0r0},
	// xcryptcbc
	{[4]byte{0x0F, 0xA7, 0xD0}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1483, 3<<4 | 15, argp_},
	// xcryptcfb
	{[4]byte{0x0F, 0xA7, 0xE0}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1484, 3<<4 | 15, argp_},
	// xcryptctr
	{[4]byte{0x0F, 0xA7, 0xD8}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1485, 3<<4 | 15, argp_},
	// xcryptecb
	{[4]byte{0x0F, 0xA7, 0xC8}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1486, 3<<4 | 15, argp_},
	// xcryptofb
	{[4]byte{0x0F, 0xA7, 0xE8}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1487, 3<<4 | 15, argp_},
	// xend
	{[4]byte{0x0F, 0x01, 0xD5}, 0, feats.RTM, 0<<11 | 1488, 3<<4 | 15, argp_},
	// xgetbv
	{[4]byte{0x0F, 0x01, 0xD0}, 0, 0, 0<<11 | 1489, 3<<4 | 15, argp_},
	// xlat
	{[4]byte{0xD7}, 0, 0, 0<<11 | 1490, 1<<4 | 15, argp_},
	// xlatb
	{[4]byte{0xD7}, 0, 0, 0<<11 | 1491, 1<<4 | 15, argp_},
	// xor
	{[4]byte{0x34}, 0, 0, 0<<11 | 1492, 1<<4 | 15, argp_Abib},
	{[4]byte{0x80}, flags.LOCK, 0, 1<<11 | 1492, 1<<4 | 6, argp_mbib},
	{[4]byte{0x30}, flags.LOCK | flags.ENC_MR, 0, 2<<11 | 1492, 1<<4 | 15, argp_mbrb},
	{[4]byte{0x80}, 0, 0, 3<<11 | 1492, 1<<4 | 6, argp_rbib},
	{[4]byte{0x30}, flags.ENC_MR, 0, 4<<11 | 1492, 1<<4 | 15, argp_rbrb},
	{[4]byte{0x32}, 0, 0, 5<<11 | 1492, 1<<4 | 15, argp_rbvb},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.EXACT_SIZE, 0, 6<<11 | 1492, 1<<4 | 6, argp_r0ib},
	{[4]byte{0x35}, flags.AUTO_SIZE, 0, 7<<11 | 1492, 1<<4 | 15, argp_A0i0},
	{[4]byte{0x81}, flags.AUTO_SIZE | flags.LOCK, 0, 8<<11 | 1492, 1<<4 | 6, argp_m0i0},
	{[4]byte{0x83}, flags.AUTO_SIZE | flags.LOCK, 0, 9<<11 | 1492, 1<<4 | 6, argp_m0ib},
	{[4]byte{0x31}, flags.AUTO_SIZE | flags.LOCK | flags.ENC_MR, 0, 10<<11 | 1492, 1<<4 | 15, argp_m0r0},
	{[4]byte{0x81}, flags.AUTO_SIZE, 0, 11<<11 | 1492, 1<<4 | 6, argp_r0i0},
	{[4]byte{0x31}, flags.AUTO_SIZE | flags.ENC_MR, 0, 12<<11 | 1492, 1<<4 | 15, argp_r0r0},
	{[4]byte{0x33}, flags.AUTO_SIZE, 0, 13<<11 | 1492, 1<<4 | 15, argp_r0v0},
	// xorpd
	{[4]byte{0x0F, 0x57}, flags.PREF_66, feats.SSE2, 0<<11 | 1493, 2<<4 | 15, argp_yowo},
	// xorps
	{[4]byte{0x0F, 0x57}, 0, feats.SSE, 0<<11 | 1494, 2<<4 | 15, argp_yowo},
	// xrstor
	{[4]byte{0x0F, 0xAE}, 0, 0, 0<<11 | 1495, 2<<4 | 5, argp_m1},
	// xrstor64
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW, 0, 0<<11 | 1496, 2<<4 | 5, argp_m1},
	// xrstors64
	{[4]byte{0x0F, 0xC7}, flags.WITH_REXW, 0, 0<<11 | 1497, 2<<4 | 3, argp_m1},
	// xsave
	{[4]byte{0x0F, 0xAE}, 0, 0, 0<<11 | 1498, 2<<4 | 4, argp_m1},
	// xsave64
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW, 0, 0<<11 | 1499, 2<<4 | 4, argp_m1},
	// xsavec64
	{[4]byte{0x0F, 0xC7}, flags.WITH_REXW, 0, 0<<11 | 1500, 2<<4 | 4, argp_m1},
	// xsaveopt64
	{[4]byte{0x0F, 0xAE}, flags.WITH_REXW, 0, 0<<11 | 1501, 2<<4 | 6, argp_m1},
	// xsaves64
	{[4]byte{0x0F, 0xC7}, flags.WITH_REXW, 0, 0<<11 | 1502, 2<<4 | 5, argp_m1},
	// xsetbv
	{[4]byte{0x0F, 0x01, 0xD1}, 0, 0, 0<<11 | 1503, 3<<4 | 15, argp_},
	// xsha1
	{[4]byte{0x0F, 0xA6, 0xC8}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1504, 3<<4 | 15, argp_},
	// xsha256
	{[4]byte{0x0F, 0xA6, 0xD0}, flags.PREF_F3, feats.CYRIX, 0<<11 | 1505, 3<<4 | 15, argp_},
	// xstore
	{[4]byte{0x0F, 0xA7, 0xC0}, 0, feats.CYRIX, 0<<11 | 1506, 3<<4 | 15, argp_},
	// xtest
	{[4]byte{0x0F, 0x01, 0xD6}, 0, feats.RTM, 0<<11 | 1507, 3<<4 | 15, argp_},
}
